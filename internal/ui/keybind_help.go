package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the one-line footer listing application keys.
func RenderKeybindHelp(reg *KeybindRegistry) string {
	if reg == nil {
		return ""
	}
	bindings := NewKeyMap(reg).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	return lipgloss.NewStyle().MarginTop(1).Render(helpModel.ShortHelpView(bindings))
}
