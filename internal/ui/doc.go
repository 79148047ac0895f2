// Package ui provides a tabbed-panel component for Bubble Tea programs.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Element: A node in a render tree; renders to a string given a RenderContext
//   - Tabs: Root element; owns the active tab State and publishes it to descendants
//   - Tab / TabPanel: Consumers of the active tab (switch control / gated content)
//   - TabList / TabPanels: Pass-through grouping containers
//   - Zones: Mouse click regions around Tab labels (bubblezone)
//   - AppModel: tea.Model adapter hosting a Tabs root with quit keybinds
//
// State reaches descendants through an explicit RenderContext, never a package
// global. A Tab or TabPanel rendered without an enclosing Tabs fails with a
// *MissingProviderError.
package ui
