package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones tracks screen regions of rendered tabs so mouse events can be mapped
// back to the tab under the pointer.
type Zones interface {
	// NewPrefix returns a prefix unique to this manager, for one Tabs instance.
	NewPrefix() string
	// Mark wraps v so that its position is recorded under id on the next Scan.
	Mark(id, v string) string
	// Scan records zone positions and strips the markers from v.
	// Call it once on the final frame handed to Bubble Tea.
	Scan(v string) string
	// InBounds reports whether msg falls inside the zone id.
	InBounds(id string, msg tea.MouseMsg) bool
}

type zoneManager struct {
	m *zone.Manager
}

// NewZones returns Zones backed by a bubblezone manager.
func NewZones() Zones {
	return &zoneManager{m: zone.New()}
}

func (z *zoneManager) NewPrefix() string        { return z.m.NewPrefix() }
func (z *zoneManager) Mark(id, v string) string { return z.m.Mark(id, v) }
func (z *zoneManager) Scan(v string) string     { return z.m.Scan(v) }

func (z *zoneManager) InBounds(id string, msg tea.MouseMsg) bool {
	info := z.m.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}
