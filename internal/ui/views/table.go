package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seltable/internal/domain"
)

// RowView is one rendered table row
type RowView struct {
	ID      string
	Name    string
	Group   string
	Checked bool
	Cursor  bool
}

// TableRenderer handles rendering of the table body
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// Render draws the header and rows, padded to width
func (tr *TableRenderer) Render(rows []RowView, width int) string {
	var b strings.Builder
	b.WriteString(tr.styles.Header.Render(fmt.Sprintf("%-5s %-6s %-32s %s", "", "ID", "Name", "Group")))
	b.WriteByte('\n')

	if len(rows) == 0 {
		b.WriteString(tr.styles.Dim.Render("  no rows"))
		return b.String()
	}

	for i, r := range rows {
		box := "[ ]"
		if r.Checked {
			box = tr.styles.Checked.Render("[x]")
		}
		line := fmt.Sprintf("  %s %-6s %-32s %s", box, r.ID, truncate(r.Name, 32), r.Group)
		if r.Cursor {
			if width > 0 && lipgloss.Width(line) < width {
				line += strings.Repeat(" ", width-lipgloss.Width(line))
			}
			line = tr.styles.Cursor.Render(line)
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderFooter draws the page indicator and selection counts
func (tr *TableRenderer) RenderFooter(page, pageCount int, sel domain.SelectionState, keepSelected bool) string {
	parts := []string{fmt.Sprintf("Page %d of %d", page+1, pageCount)}
	parts = append(parts, fmt.Sprintf("%d selected", sel.Total()))
	if sel.Hidden > 0 {
		parts = append(parts, tr.styles.Hidden.Render(fmt.Sprintf("%d not displayed", sel.Hidden)))
	}
	if !keepSelected {
		parts = append(parts, "selections cleared on page change")
	}
	return tr.styles.Scroll.Render(strings.Join(parts, " · "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
