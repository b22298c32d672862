// Package toolbar gates bulk-action controls on the table selection.
//
// A Toolbar owns two ordered groups of controls, top and bottom. Every call
// to Recompute reads the selection once and sets each control enabled when
// at least one row is selected, visible or hidden.
package toolbar

import (
	"seltable/internal/domain"
)

// SelectionSource is the table side of the contract
type SelectionSource interface {
	SelectionState() domain.SelectionState
}

// availability is implemented by sources that can be uninitialized
type availability interface {
	Available() bool
}

// Position names a control group
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) String() string {
	if p == Bottom {
		return "actionsBottom"
	}
	return "actionsTop"
}

// MoreActionsID is the ID suffix of each group's aggregate menu control
const MoreActionsID = "moreActions"

// ActionSpec describes one button shown in both groups
type ActionSpec struct {
	ID    string
	Label string
}

// Toolbar propagates the "actions enabled" decision to its controls
type Toolbar struct {
	top     []ActionControl
	bottom  []ActionControl
	byID    map[string]*Control
	enabled bool
}

// New creates an empty toolbar
func New() *Toolbar {
	return &Toolbar{byID: make(map[string]*Control)}
}

// NewStandard builds both groups from the same action list, each group
// ending with a "more actions" menu control. Control IDs are
// "<group>:<action id>", e.g. "actionsTop:delete".
func NewStandard(actions []ActionSpec, moreLabel string) *Toolbar {
	t := New()
	for _, pos := range []Position{Top, Bottom} {
		for _, a := range actions {
			t.Add(pos, NewControl(pos.String()+":"+a.ID, Button, a.Label))
		}
		t.Add(pos, NewControl(pos.String()+":"+MoreActionsID, MenuItem, moreLabel))
	}
	return t
}

// Add registers a control at the end of a group
func (t *Toolbar) Add(pos Position, c ActionControl) {
	if pos == Bottom {
		t.bottom = append(t.bottom, c)
	} else {
		t.top = append(t.top, c)
	}
	if ctl, ok := c.(*Control); ok && ctl != nil && ctl.ID != "" {
		t.byID[ctl.ID] = ctl
	}
}

// Recompute sets every control enabled iff the source reports at least one
// selection. Missing controls are skipped; a missing source is a no-op.
func (t *Toolbar) Recompute(src SelectionSource) {
	if src == nil {
		return
	}
	if a, ok := src.(availability); ok && !a.Available() {
		return
	}

	t.enabled = src.SelectionState().HasSelection()

	for _, c := range t.Controls() {
		if isNil(c) {
			continue
		}
		c.SetEnabled(t.enabled)
	}
}

// Enabled returns the decision of the last Recompute. A toolbar that has
// never been recomputed is disabled.
func (t *Toolbar) Enabled() bool {
	return t.enabled
}

// Controls returns all controls in display order: top group, then bottom
func (t *Toolbar) Controls() []ActionControl {
	out := make([]ActionControl, 0, len(t.top)+len(t.bottom))
	out = append(out, t.top...)
	return append(out, t.bottom...)
}

// Group returns the Control values of one group, skipping custom controls
func (t *Toolbar) Group(pos Position) []*Control {
	src := t.top
	if pos == Bottom {
		src = t.bottom
	}
	var out []*Control
	for _, c := range src {
		if ctl, ok := c.(*Control); ok && ctl != nil {
			out = append(out, ctl)
		}
	}
	return out
}

// Control looks up a registered control by ID
func (t *Toolbar) Control(id string) (*Control, bool) {
	c, ok := t.byID[id]
	return c, ok
}

func isNil(c ActionControl) bool {
	if c == nil {
		return true
	}
	ctl, ok := c.(*Control)
	return ok && ctl == nil
}
