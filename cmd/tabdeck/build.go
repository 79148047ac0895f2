package main

import (
	"tabdeck/internal/config"
	"tabdeck/internal/ui"
)

// buildTabs turns the configured tabs into a Tabs tree: one TabList holding
// a Tab per entry and one TabPanels holding the matching TabPanel.
func buildTabs(cfg config.Config) *ui.Tabs {
	list := make([]ui.Element, 0, len(cfg.Tabs))
	panels := make([]ui.Element, 0, len(cfg.Tabs))
	for _, tc := range cfg.Tabs {
		label := tc.Label
		if label == "" {
			label = tc.ID
		}
		list = append(list, ui.NewTab(tc.ID, ui.Text(label)))
		panels = append(panels, ui.NewTabPanel(tc.ID, ui.Text(tc.Content)))
	}
	return ui.NewTabs(cfg.DefaultTab, ui.NewTabList(list...), ui.NewTabPanels(panels...))
}
