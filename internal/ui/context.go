package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderContext is threaded through one render pass of an element tree.
// It carries the channel of the nearest enclosing Tabs, the zone manager used
// to mark clickable tabs, and the Frame recording what was drawn.
type RenderContext struct {
	channel Channel
	zones   Zones
	prefix  string
	frame   *Frame
}

// NewRenderContext returns a root context with no enclosing Tabs.
// zones may be nil, in which case tabs are drawn but not clickable.
func NewRenderContext(zones Zones) *RenderContext {
	return &RenderContext{zones: zones, frame: &Frame{}}
}

// Channel returns the enclosing Tabs' channel, or a *MissingProviderError
// naming component when there is none.
func (c *RenderContext) Channel(component string) (Channel, error) {
	if c == nil || c.channel == nil {
		return nil, &MissingProviderError{Component: component}
	}
	return c.channel, nil
}

// Frame returns the record of the current render pass.
func (c *RenderContext) Frame() *Frame {
	if c == nil {
		return nil
	}
	return c.frame
}

// provide returns a child context publishing ch to descendants.
func (c *RenderContext) provide(ch Channel, prefix string) *RenderContext {
	if c == nil {
		c = NewRenderContext(nil)
	}
	return &RenderContext{channel: ch, zones: c.zones, prefix: prefix, frame: c.frame}
}

// markTab records a rendered Tab and wraps its output in a click zone.
func (c *RenderContext) markTab(t *Tab, ch Channel, active bool, out string) string {
	if c.frame == nil {
		c.frame = &Frame{}
	}
	rec := TabRecord{ID: t.ID, Active: active, tab: t, channel: ch}
	if c.zones != nil {
		rec.ZoneID = fmt.Sprintf("%stab-%d", c.prefix, len(c.frame.Tabs))
		out = c.zones.Mark(rec.ZoneID, out)
	}
	c.frame.Tabs = append(c.frame.Tabs, rec)
	return out
}

func (c *RenderContext) markPanel(id string) {
	if c.frame == nil {
		c.frame = &Frame{}
	}
	c.frame.Panels = append(c.frame.Panels, id)
}

// TabRecord describes one Tab drawn during a render pass.
type TabRecord struct {
	ID     string
	Active bool
	ZoneID string

	tab     *Tab
	channel Channel
}

// Frame records which tabs and panels a render pass produced.
type Frame struct {
	Tabs   []TabRecord
	Panels []string
}

// ActiveTabs returns the ids of tabs drawn with the active marker.
func (f *Frame) ActiveTabs() []string {
	if f == nil {
		return nil
	}
	var ids []string
	for _, r := range f.Tabs {
		if r.Active {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// VisiblePanels returns the ids of panels that rendered content.
func (f *Frame) VisiblePanels() []string {
	if f == nil {
		return nil
	}
	return f.Panels
}

// hit returns the tab whose zone contains the mouse event.
func (f *Frame) hit(zones Zones, msg tea.MouseMsg) (TabRecord, bool) {
	if f == nil || zones == nil {
		return TabRecord{}, false
	}
	for _, r := range f.Tabs {
		if r.ZoneID != "" && zones.InBounds(r.ZoneID, msg) {
			return r, true
		}
	}
	return TabRecord{}, false
}
