package ui

// TabList groups tab controls in a row.
type TabList struct {
	Children []Element
}

// NewTabList creates a TabList.
func NewTabList(children ...Element) *TabList {
	return &TabList{Children: children}
}

// Render implements Element.
func (l *TabList) Render(ctx *RenderContext) (string, error) {
	parts, err := renderChildren(ctx, l.Children)
	if err != nil {
		return "", err
	}
	return Styles.TabList.Render(joinHorizontal(parts)), nil
}

// TabPanels groups panels in a column.
type TabPanels struct {
	Children []Element
}

// NewTabPanels creates a TabPanels.
func NewTabPanels(children ...Element) *TabPanels {
	return &TabPanels{Children: children}
}

// Render implements Element.
func (p *TabPanels) Render(ctx *RenderContext) (string, error) {
	parts, err := renderChildren(ctx, p.Children)
	if err != nil {
		return "", err
	}
	return Styles.TabPanels.Render(joinVertical(parts)), nil
}
