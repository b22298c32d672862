package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderConfirm draws the confirmation dialog for a pending action
func (pr *PopupRenderer) RenderConfirm(title, message string) string {
	body := pr.styles.Confirm.Render(title) + "\n\n" + message + "\n\n" + pr.styles.Help.Render("y confirm · n cancel")
	return pr.styles.ConfirmBox.Render(body)
}

// Center places popup in the middle of a width x height area
func (pr *PopupRenderer) Center(popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return popup
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
