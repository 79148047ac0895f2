package ui

import "github.com/charmbracelet/lipgloss"

// Element is a node of a tab tree. Render returns "" when the element
// produces no output (an inactive TabPanel), which containers skip.
type Element interface {
	Render(ctx *RenderContext) (string, error)
}

// Text is a leaf element rendering a literal string.
type Text string

// Render implements Element.
func (t Text) Render(*RenderContext) (string, error) {
	return string(t), nil
}

// ViewElement adapts a View into an Element so existing views can be used as
// tab labels or panel bodies.
type ViewElement struct {
	View View
}

// Render implements Element.
func (v ViewElement) Render(*RenderContext) (string, error) {
	if v.View == nil {
		return "", nil
	}
	return v.View.View(), nil
}

// Render renders el as the root of a tree, outside any Tabs.
// Rendering a bare Tab or TabPanel this way fails with a *MissingProviderError.
func Render(el Element) (string, *Frame, error) {
	ctx := NewRenderContext(nil)
	out, err := el.Render(ctx)
	if err != nil {
		return "", ctx.Frame(), err
	}
	return out, ctx.Frame(), nil
}

// renderChildren renders children in order and drops empty outputs.
// The first error aborts the pass; no partial output is returned.
func renderChildren(ctx *RenderContext, children []Element) ([]string, error) {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		out, err := child.Render(ctx)
		if err != nil {
			return nil, err
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return parts, nil
}

func joinVertical(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func joinHorizontal(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
