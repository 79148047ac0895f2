package ui

// TabPanel is content bound to one tab id. It renders only while that id is
// active; otherwise it produces no output at all.
type TabPanel struct {
	ID   string
	Body []Element
}

// NewTabPanel creates a TabPanel with the given body content.
func NewTabPanel(id string, body ...Element) *TabPanel {
	return &TabPanel{ID: id, Body: body}
}

// Render implements Element.
func (p *TabPanel) Render(ctx *RenderContext) (string, error) {
	ch, err := ctx.Channel("TabPanel")
	if err != nil {
		return "", err
	}
	if ch.ActiveTab() != p.ID {
		return "", nil
	}
	parts, err := renderChildren(ctx, p.Body)
	if err != nil {
		return "", err
	}
	ctx.markPanel(p.ID)
	return Styles.Panel.Render(joinVertical(parts)), nil
}
