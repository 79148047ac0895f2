package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Tabs is the root of a tab tree. It owns the active tab State and publishes
// it to every descendant through the RenderContext.
type Tabs struct {
	state    *State
	children []Element
	zones    Zones
	prefix   string
	frame    *Frame
	err      error
}

// Ensure Tabs is both a View and an Element.
var (
	_ View    = (*Tabs)(nil)
	_ Element = (*Tabs)(nil)
)

// NewTabs creates a Tabs whose active tab starts at defaultActiveTab.
// The default is not checked against the children.
func NewTabs(defaultActiveTab string, children ...Element) *Tabs {
	return &Tabs{
		state:    NewState(defaultActiveTab),
		children: children,
	}
}

// WithZones makes the tabs of this tree clickable through z.
func (t *Tabs) WithZones(z Zones) *Tabs {
	t.zones = z
	t.prefix = ""
	return t
}

// ActiveTab returns the currently active tab id.
func (t *Tabs) ActiveTab() string {
	return t.state.ActiveTab()
}

// SetActiveTab selects id.
func (t *Tabs) SetActiveTab(id string) {
	t.state.SetActiveTab(id)
}

// Subscribe registers fn to be called whenever the active tab changes.
func (t *Tabs) Subscribe(fn ChangeFunc) (unsubscribe func()) {
	return t.state.Subscribe(fn)
}

// Channel returns the channel published to descendants.
func (t *Tabs) Channel() Channel {
	return t.state
}

// Frame returns the record of the last View pass, or nil before the first.
func (t *Tabs) Frame() *Frame {
	return t.frame
}

// Err returns the error of the last View pass.
func (t *Tabs) Err() error {
	return t.err
}

// Render implements Element. Any descendant error aborts the whole tree.
func (t *Tabs) Render(parent *RenderContext) (string, error) {
	ctx := parent.provide(t.state, t.zonePrefix(parent))
	parts, err := renderChildren(ctx, t.children)
	if err != nil {
		return "", err
	}
	return Styles.Tabs.Render(joinVertical(parts)), nil
}

func (t *Tabs) zonePrefix(parent *RenderContext) string {
	zones := t.zones
	if zones == nil && parent != nil {
		zones = parent.zones
	}
	if zones == nil {
		return ""
	}
	if t.prefix == "" {
		t.prefix = zones.NewPrefix()
	}
	return t.prefix
}

// Init implements View.
func (t *Tabs) Init() tea.Cmd {
	return nil
}

// Update implements View. A left-button release over a tab activates it.
func (t *Tabs) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ActivateTabMsg:
		return t, t.activate(t.state, msg.ID, nil)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return t, nil
		}
		if rec, ok := t.frame.hit(t.zones, msg); ok {
			return t, t.activate(rec.channel, rec.ID, rec.tab)
		}
	}
	return t, nil
}

func (t *Tabs) activate(ch Channel, id string, tab *Tab) tea.Cmd {
	from := ch.ActiveTab()
	if tab != nil {
		tab.Activate(ch)
	} else {
		ch.SetActiveTab(id)
	}
	if from == id {
		return nil
	}
	return func() tea.Msg {
		return ActiveTabChangedMsg{From: from, To: id}
	}
}

// View implements View. Zone markers are left in the output; the program's
// root model scans them. On error the tree is replaced by the error text.
func (t *Tabs) View() string {
	ctx := NewRenderContext(t.zones)
	out, err := t.Render(ctx)
	t.frame = ctx.Frame()
	t.err = err
	if err != nil {
		t.frame = &Frame{}
		return Styles.Error.Render(err.Error())
	}
	return out
}
