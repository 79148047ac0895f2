package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the active tab, borders
	ColorDanger    = "196" // Red - for render errors
	ColorMuted     = "241" // Gray - for inactive tabs, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains the shared style definitions for tab trees.
var Styles = struct {
	// Containers
	Tabs      lipgloss.Style // Root wrapper around a Tabs tree
	TabList   lipgloss.Style // Row of tab controls
	TabPanels lipgloss.Style // Group of panels
	Panel     lipgloss.Style // Visible panel body (rounded accent border)

	// Tab controls
	TabLabel       lipgloss.Style // Inactive tab label
	TabLabelActive lipgloss.Style // Active tab label (bold highlight)
	TabRule        lipgloss.Style // Light underline under inactive tabs
	TabRuleActive  lipgloss.Style // Heavy underline under the active tab

	// Text styles
	Title lipgloss.Style // Bold accent color - for titles
	Hint  lipgloss.Style // Help/hint text (muted color)
	Error lipgloss.Style // Error boundary box (danger border)
}{
	Tabs:      lipgloss.NewStyle(),
	TabList:   lipgloss.NewStyle().MarginBottom(1),
	TabPanels: lipgloss.NewStyle(),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	TabLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabLabelActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	TabRule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabRuleActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
}

// Rule characters drawn under tab labels.
const (
	ruleActive   = "━"
	ruleInactive = "─"
)
