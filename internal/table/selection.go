package table

import (
	"seltable/internal/domain"
)

// SelectionChangedEvent is published after rows were selected or deselected
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	State   domain.SelectionState
}

// SelectionClearedEvent is published after every selection was dropped
type SelectionClearedEvent struct{}

// RowsRemovedEvent is published after selected rows were deleted from the store
type RowsRemovedEvent struct {
	IDs    []string
	Hidden int
}

// Toggle toggles selection of the row at index on the current page
func (t *Table) Toggle(index int) {
	row, ok := t.RowAt(index)
	if !ok {
		return
	}

	var added, removed []string
	if t.selected[row.ID] {
		delete(t.selected, row.ID)
		removed = append(removed, row.ID)
	} else {
		t.selected[row.ID] = true
		added = append(added, row.ID)
	}

	t.lastSelected = index

	t.publish(SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		State:   t.SelectionState(),
	})
}

// SelectRange selects the rows between the last toggled row and toIndex
func (t *Table) SelectRange(toIndex int) {
	if t.lastSelected < 0 {
		t.Toggle(toIndex)
		return
	}

	start, end := t.lastSelected, toIndex
	if start > end {
		start, end = end, start
	}

	var added []string
	for i := start; i <= end; i++ {
		row, ok := t.RowAt(i)
		if ok && !t.selected[row.ID] {
			t.selected[row.ID] = true
			added = append(added, row.ID)
		}
	}
	t.lastSelected = toIndex

	if len(added) > 0 {
		t.publish(SelectionChangedEvent{
			Added: added,
			State: t.SelectionState(),
		})
	}
}

// SelectPage selects every row on the current page
func (t *Table) SelectPage() {
	t.selectRows(t.PageRows())
}

// SelectAll selects every row passing the filter. With KeepSelected off
// only the rendered page can hold selections, so it behaves like SelectPage.
func (t *Table) SelectAll() {
	if !t.keepSelected {
		t.SelectPage()
		return
	}
	t.selectRows(t.FilteredRows())
}

func (t *Table) selectRows(rows []domain.Row) {
	var added []string
	for _, r := range rows {
		if !t.selected[r.ID] {
			t.selected[r.ID] = true
			added = append(added, r.ID)
		}
	}
	if len(added) > 0 {
		t.publish(SelectionChangedEvent{
			Added: added,
			State: t.SelectionState(),
		})
	}
}

// DeselectAll clears all selections, rendered or not
func (t *Table) DeselectAll() {
	t.selected = make(map[string]bool)
	t.lastSelected = -1

	t.publish(SelectionClearedEvent{})
}

// IsSelected checks if a row is selected
func (t *Table) IsSelected(id string) bool {
	return t.selected[id]
}

// Selected returns the selected row IDs in store order
func (t *Table) Selected() []string {
	if !t.Available() {
		return nil
	}
	var out []string
	for _, r := range t.store.AllRows() {
		if t.selected[r.ID] {
			out = append(out, r.ID)
		}
	}
	return out
}

// RenderedSelected returns the selected row IDs on the current page
func (t *Table) RenderedSelected() []string {
	var out []string
	for _, r := range t.PageRows() {
		if t.selected[r.ID] {
			out = append(out, r.ID)
		}
	}
	return out
}

// Count returns the number of selected rows
func (t *Table) Count() int {
	return len(t.selected)
}

// HasSelection returns true if anything is selected
func (t *Table) HasSelection() bool {
	return len(t.selected) > 0
}

// RemoveFromSelection drops specific rows from the selection
func (t *Table) RemoveFromSelection(ids []string) {
	var removed []string
	for _, id := range ids {
		if t.selected[id] {
			delete(t.selected, id)
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		t.publish(SelectionChangedEvent{
			Removed: removed,
			State:   t.SelectionState(),
		})
	}
}

// ActionTargets returns the rows a bulk action applies to: every selected
// row when selections are kept across pages, otherwise the rendered ones.
func (t *Table) ActionTargets() []string {
	if t.keepSelected {
		return t.Selected()
	}
	return t.RenderedSelected()
}

// DeleteSelected removes the action targets from the store and the
// selection. It returns the removed IDs and how many of them were hidden.
func (t *Table) DeleteSelected() ([]string, int) {
	targets := t.ActionTargets()
	if len(targets) == 0 {
		return nil, 0
	}

	rendered := make(map[string]bool)
	for _, r := range t.PageRows() {
		rendered[r.ID] = true
	}

	var removed []string
	hidden := 0
	for _, id := range targets {
		if !t.store.RemoveRow(id) {
			continue
		}
		delete(t.selected, id)
		removed = append(removed, id)
		if !rendered[id] {
			hidden++
		}
	}

	t.afterViewChange()
	t.publish(RowsRemovedEvent{IDs: removed, Hidden: hidden})
	return removed, hidden
}
