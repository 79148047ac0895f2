package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model of a tabdeck program: a Tabs tree plus
// application keybinds and a help footer.
type AppModel struct {
	Root       *Tabs
	KeyHandler *KeyHandler
	Zones      Zones
	Title      string
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Root == nil {
		return nil
	}
	return a.Root.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(keyMsg); consumed {
			return a, cmd
		}
	}
	if a.Root == nil {
		return a, nil
	}
	_, cmd := a.Root.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	if a.Title != "" {
		base = Styles.Title.Render(a.Title) + "\n\n"
	}
	if a.Root != nil {
		base += a.Root.View()
	}
	if a.KeyHandler != nil {
		base += "\n" + RenderKeybindHelp(a.KeyHandler.Registry)
	}
	if a.Zones != nil {
		return a.Zones.Scan(base)
	}
	return base
}

// NewAppModel creates the root application model around root.
// When zones is non-nil the root's tabs become clickable.
func NewAppModel(root *Tabs, zones Zones) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	if root != nil && zones != nil {
		root.WithZones(zones)
	}
	return &AppModel{
		Root:       root,
		KeyHandler: NewKeyHandler(reg),
		Zones:      zones,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
