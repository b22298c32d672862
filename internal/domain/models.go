package domain

// Row represents a single record in the table
type Row struct {
	ID    string `toml:"id"`
	Last  string `toml:"last"`
	First string `toml:"first"`
	Group string `toml:"group,omitempty"` // optional grouping label
}

// DisplayName returns "Last, First" or whichever part is present
func (r Row) DisplayName() string {
	switch {
	case r.Last != "" && r.First != "":
		return r.Last + ", " + r.First
	case r.Last != "":
		return r.Last
	default:
		return r.First
	}
}

// SelectionState holds the selection counts owned by the table.
// Hidden counts selected rows that are filtered out or on another page.
type SelectionState struct {
	Visible int
	Hidden  int
}

// Total returns visible plus hidden selections
func (s SelectionState) Total() int {
	return s.Visible + s.Hidden
}

// HasSelection reports whether any row is selected, rendered or not
func (s SelectionState) HasSelection() bool {
	return s.Total() > 0
}
