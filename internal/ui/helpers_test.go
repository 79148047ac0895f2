package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeZones records marks and reports a hit for exactly one zone id.
type fakeZones struct {
	prefixes int
	marked   []string
	scanned  int
	hit      string
}

func (f *fakeZones) NewPrefix() string {
	f.prefixes++
	return fmt.Sprintf("z%d:", f.prefixes)
}

func (f *fakeZones) Mark(id, v string) string {
	f.marked = append(f.marked, id)
	return v
}

func (f *fakeZones) Scan(v string) string {
	f.scanned++
	return v
}

func (f *fakeZones) InBounds(id string, _ tea.MouseMsg) bool {
	return id != "" && id == f.hit
}

// demoTabs builds three tab/panel pairs tab1..tab3.
func demoTabs(defaultTab string) *Tabs {
	return NewTabs(defaultTab,
		NewTabList(
			NewTab("tab1", Text("Tab 1")),
			NewTab("tab2", Text("Tab 2")),
			NewTab("tab3", Text("Tab 3")),
		),
		NewTabPanels(
			NewTabPanel("tab1", Text("Content for Tab 1")),
			NewTabPanel("tab2", Text("Content for Tab 2")),
			NewTabPanel("tab3", Text("Content for Tab 3")),
		),
	)
}

// zoneFor returns the zone id recorded for tab id in the last frame.
func zoneFor(f *Frame, id string) string {
	for _, r := range f.Tabs {
		if r.ID == id {
			return r.ZoneID
		}
	}
	return ""
}

func leftRelease() tea.MouseMsg {
	return tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// click renders tabs, aims the fake pointer at tab id and releases the left button.
func click(tabs *Tabs, zones *fakeZones, id string) tea.Cmd {
	tabs.View()
	zones.hit = zoneFor(tabs.Frame(), id)
	_, cmd := tabs.Update(leftRelease())
	return cmd
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
