package handlers

import (
	"seltable/internal/table"
	"seltable/internal/toolbar"
)

// SelectionHandler applies a selection change in two explicit phases: the
// change is committed to the table first, then the row controls and every
// toolbar are recomputed from the committed state before Apply returns.
type SelectionHandler struct {
	table    *table.Table
	toolbars []*toolbar.Toolbar
}

// NewSelectionHandler creates a handler over tbl gating the given toolbars
func NewSelectionHandler(tbl *table.Table, toolbars ...*toolbar.Toolbar) *SelectionHandler {
	return &SelectionHandler{table: tbl, toolbars: toolbars}
}

// Apply runs commit, then resynchronizes row controls and toolbars.
// A nil commit only resynchronizes.
func (h *SelectionHandler) Apply(commit func(t *table.Table)) {
	if commit != nil && h.table.Available() {
		commit(h.table)
	}
	h.Sync()
}

// Sync resynchronizes row controls and toolbars with the table
func (h *SelectionHandler) Sync() {
	h.table.ReinitializeRowControls()
	for _, tb := range h.toolbars {
		if tb != nil {
			tb.Recompute(h.table)
		}
	}
}
