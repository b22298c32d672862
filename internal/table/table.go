package table

import (
	"log"
	"sort"
	"strings"

	"seltable/internal/domain"
)

// Publisher is the subset of the UI event bus the table needs
type Publisher interface {
	Publish(event interface{})
}

// Options configures a Table
type Options struct {
	PageSize int
	// KeepSelected keeps selections on rows that leave the rendered page.
	// When false such selections are cleared, so Hidden is always zero.
	KeepSelected bool
}

// Table owns the rows, the filter, the pagination and the selection
type Table struct {
	store RowStore
	bus   Publisher

	pageSize     int
	keepSelected bool
	page         int
	filter       string

	selected     map[string]bool
	lastSelected int // index on the current page, for range selection

	// checkbox state of the rendered rows, rebuilt by ReinitializeRowControls
	rowControls map[string]bool
}

// New creates a table over store. bus may be nil.
func New(store RowStore, bus Publisher, opts Options) *Table {
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}
	t := &Table{
		store:        store,
		bus:          bus,
		pageSize:     opts.PageSize,
		keepSelected: opts.KeepSelected,
		selected:     make(map[string]bool),
		lastSelected: -1,
		rowControls:  make(map[string]bool),
	}
	t.ReinitializeRowControls()
	return t
}

// Available reports whether the table can answer selection queries
func (t *Table) Available() bool {
	return t != nil && t.store != nil
}

// SelectionState returns the visible and hidden selection counts
func (t *Table) SelectionState() domain.SelectionState {
	if !t.Available() {
		return domain.SelectionState{}
	}
	visible := 0
	for _, r := range t.PageRows() {
		if t.selected[r.ID] {
			visible++
		}
	}
	return domain.SelectionState{
		Visible: visible,
		Hidden:  len(t.selected) - visible,
	}
}

// KeepSelected returns the current selection retention policy
func (t *Table) KeepSelected() bool {
	return t.keepSelected
}

// SetKeepSelected changes the retention policy. Turning it off drops
// selections that are not rendered.
func (t *Table) SetKeepSelected(keep bool) {
	t.keepSelected = keep
	t.afterViewChange()
}

// PageSize returns the number of rows per page
func (t *Table) PageSize() int {
	return t.pageSize
}

// SetPageSize changes the page size and keeps the page index in range
func (t *Table) SetPageSize(n int) {
	if n < 1 {
		return
	}
	t.pageSize = n
	t.afterViewChange()
}

// Filter returns the active filter text
func (t *Table) Filter() string {
	return t.filter
}

// SetFilter applies a case-insensitive substring filter and returns to
// the first page
func (t *Table) SetFilter(query string) {
	query = strings.TrimSpace(query)
	if query == t.filter {
		return
	}
	t.filter = query
	t.page = 0
	t.afterViewChange()
}

// Rows returns every row in store order, ignoring the filter
func (t *Table) Rows() []domain.Row {
	if !t.Available() {
		return nil
	}
	return t.store.AllRows()
}

// FilteredRows returns all rows passing the filter, in store order
func (t *Table) FilteredRows() []domain.Row {
	if !t.Available() {
		return nil
	}
	all := t.store.AllRows()
	if t.filter == "" {
		return all
	}
	needle := strings.ToLower(t.filter)
	var out []domain.Row
	for _, r := range all {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Row, needle string) bool {
	for _, field := range []string{r.Last, r.First, r.Group, r.ID} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// PageRows returns the rows rendered on the current page
func (t *Table) PageRows() []domain.Row {
	rows := t.FilteredRows()
	start := t.page * t.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + t.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Page returns the zero-based current page
func (t *Table) Page() int {
	return t.page
}

// PageCount returns the number of pages, at least 1
func (t *Table) PageCount() int {
	n := len(t.FilteredRows())
	if n == 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

// SetPage moves to page p, clamped to the valid range
func (t *Table) SetPage(p int) {
	if p < 0 {
		p = 0
	}
	if last := t.PageCount() - 1; p > last {
		p = last
	}
	if p == t.page {
		return
	}
	t.page = p
	t.afterViewChange()
}

// NextPage moves forward one page
func (t *Table) NextPage() {
	t.SetPage(t.page + 1)
}

// PrevPage moves back one page
func (t *Table) PrevPage() {
	t.SetPage(t.page - 1)
}

// RowAt returns the row at index on the current page
func (t *Table) RowAt(index int) (domain.Row, bool) {
	rows := t.PageRows()
	if index < 0 || index >= len(rows) {
		return domain.Row{}, false
	}
	return rows[index], true
}

// ReinitializeRowControls rebuilds the checkbox state of every rendered row
// from the selection data. Call it after any out-of-band selection change.
func (t *Table) ReinitializeRowControls() {
	if !t.Available() {
		return
	}
	controls := make(map[string]bool)
	for _, r := range t.PageRows() {
		controls[r.ID] = t.selected[r.ID]
	}
	t.rowControls = controls
}

// RowChecked returns the rendered checkbox state of a row
func (t *Table) RowChecked(id string) bool {
	return t.rowControls[id]
}

// afterViewChange enforces the retention policy and keeps the page valid
// after the set of rendered rows changed
func (t *Table) afterViewChange() {
	if last := t.PageCount() - 1; t.page > last {
		t.page = last
	}
	t.lastSelected = -1

	if !t.keepSelected {
		rendered := make(map[string]bool)
		for _, r := range t.PageRows() {
			rendered[r.ID] = true
		}
		var dropped []string
		for id := range t.selected {
			if !rendered[id] {
				dropped = append(dropped, id)
			}
		}
		if len(dropped) > 0 {
			sort.Strings(dropped)
			log.Printf("Clearing %d selections no longer rendered", len(dropped))
			t.RemoveFromSelection(dropped)
		}
	}
	t.ReinitializeRowControls()
}

func (t *Table) publish(event interface{}) {
	if t.bus != nil {
		t.bus.Publish(event)
	}
}
