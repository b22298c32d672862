package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seltable/internal/toolbar"
)

// ControlView is one rendered toolbar control
type ControlView struct {
	Label   string
	Kind    toolbar.Kind
	Enabled bool
	Key     string // shortcut hint, e.g. "1"
}

// ControlViews converts a toolbar group for rendering. Buttons get number
// shortcuts in order; the menu control gets "m".
func ControlViews(controls []*toolbar.Control) []ControlView {
	out := make([]ControlView, 0, len(controls))
	n := 0
	for _, c := range controls {
		v := ControlView{Label: c.Label, Kind: c.Kind, Enabled: c.Enabled()}
		if c.Kind == toolbar.MenuItem {
			v.Key = "m"
		} else {
			n++
			v.Key = fmt.Sprintf("%d", n)
		}
		out = append(out, v)
	}
	return out
}

// ToolbarRenderer draws a row of action controls
type ToolbarRenderer struct {
	styles *Styles
}

// NewToolbarRenderer creates a new toolbar renderer
func NewToolbarRenderer(styles *Styles) *ToolbarRenderer {
	return &ToolbarRenderer{styles: styles}
}

// Render draws the controls side by side
func (tr *ToolbarRenderer) Render(controls []ControlView) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		label := c.Label
		if c.Kind == toolbar.MenuItem {
			label += " ▾"
		}
		if c.Key != "" {
			label = c.Key + " " + label
		}
		style := tr.styles.ButtonDisabled
		if c.Enabled {
			style = tr.styles.ButtonEnabled
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

// RenderMenu draws the open "more actions" dropdown
func (tr *ToolbarRenderer) RenderMenu(title string, items []string, index int) string {
	var b strings.Builder
	b.WriteString(tr.styles.MenuTitle.Render(title))
	for i, item := range items {
		b.WriteByte('\n')
		if i == index {
			b.WriteString(tr.styles.MenuSelected.Render("› " + item))
		} else {
			b.WriteString(tr.styles.MenuItem.Render("  " + item))
		}
	}
	return tr.styles.MenuBox.Render(b.String())
}
