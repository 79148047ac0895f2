package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tab is a clickable control bound to one tab id. The id should be unique
// among siblings but this is not enforced.
type Tab struct {
	ID    string
	Label []Element
}

// NewTab creates a Tab with the given label content.
func NewTab(id string, label ...Element) *Tab {
	return &Tab{ID: id, Label: label}
}

// IsActive reports whether ch currently selects this tab.
func (t *Tab) IsActive(ch Channel) bool {
	return ch.ActiveTab() == t.ID
}

// Activate selects this tab. Activating an already active tab is a no-op.
func (t *Tab) Activate(ch Channel) {
	ch.SetActiveTab(t.ID)
}

// Render implements Element. The label is underlined with a heavy rule when
// the tab is active and a light rule otherwise.
func (t *Tab) Render(ctx *RenderContext) (string, error) {
	ch, err := ctx.Channel("Tab")
	if err != nil {
		return "", err
	}
	active := t.IsActive(ch)

	parts, err := renderChildren(ctx, t.Label)
	if err != nil {
		return "", err
	}

	labelStyle, ruleStyle, rule := Styles.TabLabel, Styles.TabRule, ruleInactive
	if active {
		labelStyle, ruleStyle, rule = Styles.TabLabelActive, Styles.TabRuleActive, ruleActive
	}
	heading := labelStyle.Render(joinHorizontal(parts))
	underline := ruleStyle.Render(strings.Repeat(rule, lipgloss.Width(heading)))
	out := lipgloss.JoinVertical(lipgloss.Left, heading, underline)

	return ctx.markTab(t, ch, active, out), nil
}
