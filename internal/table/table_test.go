package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seltable/internal/domain"
)

type recorder struct {
	events []interface{}
}

func (r *recorder) Publish(event interface{}) {
	r.events = append(r.events, event)
}

func rows(n int) []domain.Row {
	out := make([]domain.Row, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Row{ID: strconv.Itoa(i), Last: "Last" + strconv.Itoa(i), First: "First"})
	}
	return out
}

func newTable(t *testing.T, n, pageSize int, keep bool) (*Table, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(NewMemoryRowStore(rows(n)...), rec, Options{PageSize: pageSize, KeepSelected: keep}), rec
}

func TestPagination(t *testing.T) {
	tbl, _ := newTable(t, 7, 3, true)

	assert.Equal(t, 3, tbl.PageCount())
	assert.Len(t, tbl.PageRows(), 3)

	tbl.NextPage()
	tbl.NextPage()
	assert.Equal(t, 2, tbl.Page())
	require.Len(t, tbl.PageRows(), 1)
	assert.Equal(t, "7", tbl.PageRows()[0].ID)

	tbl.NextPage()
	assert.Equal(t, 2, tbl.Page(), "page is clamped at the end")

	tbl.SetPage(-3)
	assert.Equal(t, 0, tbl.Page())
}

func TestToggleUpdatesCountsAndPublishes(t *testing.T) {
	tbl, rec := newTable(t, 5, 10, true)

	tbl.Toggle(0)
	tbl.Toggle(2)
	assert.Equal(t, domain.SelectionState{Visible: 2}, tbl.SelectionState())

	tbl.Toggle(0)
	assert.Equal(t, []string{"3"}, tbl.Selected())

	require.Len(t, rec.events, 3)
	last := rec.events[2].(SelectionChangedEvent)
	assert.Equal(t, []string{"1"}, last.Removed)
	assert.Equal(t, 1, last.State.Total())
}

func TestToggleOutOfRangeIsIgnored(t *testing.T) {
	tbl, rec := newTable(t, 2, 10, true)
	tbl.Toggle(5)
	tbl.Toggle(-1)
	assert.Zero(t, tbl.Count())
	assert.Empty(t, rec.events)
}

func TestHiddenSelectionsWhenKept(t *testing.T) {
	tbl, _ := newTable(t, 6, 2, true)

	tbl.Toggle(0)
	tbl.Toggle(1)
	tbl.NextPage()
	tbl.Toggle(0)

	assert.Equal(t, domain.SelectionState{Visible: 1, Hidden: 2}, tbl.SelectionState())
	assert.Equal(t, []string{"1", "2", "3"}, tbl.ActionTargets())
}

func TestSelectionsClearedWhenNotKept(t *testing.T) {
	tbl, rec := newTable(t, 6, 2, false)

	tbl.Toggle(0)
	tbl.NextPage()

	assert.Equal(t, domain.SelectionState{}, tbl.SelectionState())
	last := rec.events[len(rec.events)-1].(SelectionChangedEvent)
	assert.Equal(t, []string{"1"}, last.Removed)
}

func TestFilterHidesSelectedRows(t *testing.T) {
	store := NewMemoryRowStore(
		domain.Row{ID: "a", Last: "Lincoln", First: "Abraham"},
		domain.Row{ID: "b", Last: "Grant", First: "Ulysses"},
		domain.Row{ID: "c", Last: "Hayes", First: "Rutherford"},
	)
	tbl := New(store, nil, Options{PageSize: 10, KeepSelected: true})

	tbl.SelectAll()
	tbl.SetFilter("  GRANT ")

	assert.Equal(t, "GRANT", tbl.Filter())
	require.Len(t, tbl.PageRows(), 1)
	assert.Equal(t, domain.SelectionState{Visible: 1, Hidden: 2}, tbl.SelectionState())

	tbl.SetFilter("")
	assert.Equal(t, domain.SelectionState{Visible: 3}, tbl.SelectionState())
}

func TestSelectRange(t *testing.T) {
	tbl, _ := newTable(t, 6, 10, true)

	tbl.Toggle(1)
	tbl.SelectRange(4)
	assert.Equal(t, []string{"2", "3", "4", "5"}, tbl.Selected())

	tbl.SelectRange(0)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, tbl.Selected())
}

func TestSelectRangeWithoutAnchorToggles(t *testing.T) {
	tbl, _ := newTable(t, 3, 10, true)
	tbl.SelectRange(2)
	assert.Equal(t, []string{"3"}, tbl.Selected())
}

func TestSelectAllRespectsPolicy(t *testing.T) {
	kept, _ := newTable(t, 5, 2, true)
	kept.SelectAll()
	assert.Equal(t, 5, kept.Count())

	notKept, _ := newTable(t, 5, 2, false)
	notKept.SelectAll()
	assert.Equal(t, 2, notKept.Count())
}

func TestDeselectAll(t *testing.T) {
	tbl, rec := newTable(t, 3, 10, true)
	tbl.SelectAll()
	tbl.DeselectAll()

	assert.False(t, tbl.HasSelection())
	assert.IsType(t, SelectionClearedEvent{}, rec.events[len(rec.events)-1])
}

func TestDeleteSelectedKept(t *testing.T) {
	tbl, rec := newTable(t, 5, 2, true)
	tbl.Toggle(0)
	tbl.NextPage()
	tbl.NextPage()
	tbl.Toggle(0)

	removed, hidden := tbl.DeleteSelected()

	assert.Equal(t, []string{"1", "5"}, removed)
	assert.Equal(t, 1, hidden)
	assert.False(t, tbl.HasSelection())
	assert.Equal(t, 1, tbl.Page(), "page clamps after rows disappear")

	ev := rec.events[len(rec.events)-1].(RowsRemovedEvent)
	assert.Equal(t, removed, ev.IDs)
}

func TestDeleteSelectedOnlyRenderedWhenNotKept(t *testing.T) {
	tbl, _ := newTable(t, 4, 10, false)
	tbl.Toggle(1)
	tbl.Toggle(3)

	removed, hidden := tbl.DeleteSelected()
	assert.Equal(t, []string{"2", "4"}, removed)
	assert.Zero(t, hidden)
	assert.Len(t, tbl.FilteredRows(), 2)
}

func TestDeleteSelectedWithNothingSelected(t *testing.T) {
	tbl, rec := newTable(t, 2, 10, true)
	removed, hidden := tbl.DeleteSelected()
	assert.Nil(t, removed)
	assert.Zero(t, hidden)
	assert.Empty(t, rec.events)
}

func TestReinitializeRowControls(t *testing.T) {
	tbl, _ := newTable(t, 3, 10, true)

	tbl.Toggle(1)
	assert.False(t, tbl.RowChecked("2"), "checkboxes are stale until reinitialized")

	tbl.ReinitializeRowControls()
	assert.True(t, tbl.RowChecked("2"))
	assert.False(t, tbl.RowChecked("1"))

	tbl.RemoveFromSelection([]string{"2"})
	tbl.ReinitializeRowControls()
	assert.False(t, tbl.RowChecked("2"))
}

func TestNilTableIsUnavailable(t *testing.T) {
	var tbl *Table
	assert.False(t, tbl.Available())
	assert.Equal(t, domain.SelectionState{}, tbl.SelectionState())
}

func TestSetKeepSelectedOffDropsHidden(t *testing.T) {
	tbl, _ := newTable(t, 4, 2, true)
	tbl.Toggle(0)
	tbl.NextPage()
	tbl.Toggle(0)
	require.Equal(t, 1, tbl.SelectionState().Hidden)

	tbl.SetKeepSelected(false)
	assert.Equal(t, domain.SelectionState{Visible: 1}, tbl.SelectionState())
}

func TestMemoryRowStore(t *testing.T) {
	s := NewMemoryRowStore(rows(3)...)
	s.AddRow(domain.Row{ID: "2", Last: "Replaced"})
	s.UpdateRow(domain.Row{ID: "missing"})

	require.Equal(t, 3, s.Len())
	r, ok := s.GetRow("2")
	require.True(t, ok)
	assert.Equal(t, "Replaced", r.Last)

	assert.True(t, s.RemoveRow("1"))
	assert.False(t, s.RemoveRow("1"))
	assert.Equal(t, "2", s.AllRows()[0].ID)
}

func TestSampleRows(t *testing.T) {
	sample := SampleRows()
	require.Len(t, sample, 24)
	assert.Equal(t, "1", sample[0].ID)
	assert.Equal(t, "Washington", sample[0].Last)
}
