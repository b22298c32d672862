// Package actions runs toolbar actions against the table selection.
package actions

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"seltable/internal/activity"
	"seltable/internal/config"
	"seltable/internal/confirm"
	"seltable/internal/eventbus"
	"seltable/internal/table"
	"seltable/internal/toolbar"
)

// ErrNoSelection is returned when an action is requested with nothing selected
var ErrNoSelection = errors.New("no rows selected")

// ErrUnknownAction is returned for IDs missing from the registry
var ErrUnknownAction = errors.New("unknown action")

// Action is one configured bulk action
type Action struct {
	ID      string
	Label   string
	Confirm bool
	Delete  bool
	Prompt  string
}

// prompt returns the question appended to a generic confirmation
func (a Action) prompt() string {
	if a.Prompt != "" {
		return a.Prompt
	}
	return a.Label + " all selections?"
}

func fromSettings(s config.ActionSettings) Action {
	label := s.Label
	if label == "" {
		label = s.ID
	}
	return Action{ID: s.ID, Label: label, Confirm: s.Confirm || s.Delete, Delete: s.Delete, Prompt: s.Prompt}
}

// Registry holds the toolbar buttons and the "more actions" menu entries
type Registry struct {
	buttons []Action
	more    []Action
	byID    map[string]Action
}

// NewRegistry builds a registry from configuration. Entries without an ID
// are skipped; later duplicates are ignored.
func NewRegistry(buttons, more []config.ActionSettings) *Registry {
	r := &Registry{byID: make(map[string]Action)}
	add := func(dst *[]Action, s config.ActionSettings) {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			log.Printf("Skipping action without id: %q", s.Label)
			return
		}
		if _, dup := r.byID[id]; dup {
			log.Printf("Skipping duplicate action id %q", id)
			return
		}
		s.ID = id
		a := fromSettings(s)
		r.byID[id] = a
		*dst = append(*dst, a)
	}
	for _, s := range buttons {
		add(&r.buttons, s)
	}
	for _, s := range more {
		add(&r.more, s)
	}
	return r
}

// Buttons returns the actions shown as toolbar buttons
func (r *Registry) Buttons() []Action {
	return r.buttons
}

// More returns the entries of the "more actions" menu
func (r *Registry) More() []Action {
	return r.more
}

// Get looks up an action by ID
func (r *Registry) Get(id string) (Action, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// Specs converts the buttons for toolbar.NewStandard
func (r *Registry) Specs() []toolbar.ActionSpec {
	specs := make([]toolbar.ActionSpec, 0, len(r.buttons))
	for _, a := range r.buttons {
		specs = append(specs, toolbar.ActionSpec{ID: a.ID, Label: a.Label})
	}
	return specs
}

// Pending is an action waiting for the user's confirmation
type Pending struct {
	Action  Action
	Message string // empty when no confirmation is needed
}

// NeedsConfirm reports whether the user must confirm first
func (p Pending) NeedsConfirm() bool {
	return p.Message != ""
}

// Result describes what an executed action did
type Result struct {
	Action  Action
	RowIDs  []string
	Hidden  int
	Deleted bool
}

// Summary is a one-line status message for the result
func (r Result) Summary() string {
	if r.Deleted {
		if r.Hidden > 0 {
			return fmt.Sprintf("Deleted %d rows (%d not displayed)", len(r.RowIDs), r.Hidden)
		}
		return fmt.Sprintf("Deleted %d rows", len(r.RowIDs))
	}
	return fmt.Sprintf("%s: %d rows", r.Action.Label, len(r.RowIDs))
}

// Runner prepares and executes actions
type Runner struct {
	registry *Registry
	table    *table.Table
	builder  *confirm.Builder
	bus      eventbus.EventBus
	activity *activity.Log
}

// NewRunner creates a runner. bus and activityLog may be nil.
func NewRunner(registry *Registry, tbl *table.Table, builder *confirm.Builder, bus eventbus.EventBus, activityLog *activity.Log) *Runner {
	return &Runner{
		registry: registry,
		table:    tbl,
		builder:  builder,
		bus:      bus,
		activity: activityLog,
	}
}

// Prepare checks an action can run and builds its confirmation message
func (r *Runner) Prepare(id string) (Pending, error) {
	a, ok := r.registry.Get(id)
	if !ok {
		return Pending{}, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}
	state := r.table.SelectionState()
	if !state.HasSelection() {
		return Pending{}, ErrNoSelection
	}

	p := Pending{Action: a}
	switch {
	case a.Delete:
		p.Message = r.builder.BuildDelete(state.Visible, state.Hidden)
	case a.Confirm:
		p.Message = r.builder.BuildGeneric(state.Visible, state.Hidden, a.prompt())
	}
	return p, nil
}

// Execute runs the action against the current action targets
func (r *Runner) Execute(a Action) (Result, error) {
	if !r.table.HasSelection() {
		return Result{}, ErrNoSelection
	}

	if a.Delete {
		removed, hidden := r.table.DeleteSelected()
		res := Result{Action: a, RowIDs: removed, Hidden: hidden, Deleted: true}
		r.record(res)
		if r.bus != nil {
			r.bus.Publish(eventbus.RowsDeletedEvent{IDs: removed, Hidden: hidden})
			r.bus.Publish(eventbus.RowsChangedEvent{Rows: r.table.Rows()})
		}
		return res, nil
	}

	res := Result{Action: a, RowIDs: r.table.ActionTargets()}
	r.record(res)
	if r.bus != nil {
		r.bus.Publish(eventbus.ActionInvokedEvent{ActionID: a.ID, Label: a.Label, RowIDs: res.RowIDs})
	}
	return res, nil
}

func (r *Runner) record(res Result) {
	log.Printf("Action %s on %d rows", res.Action.ID, len(res.RowIDs))
	if r.activity != nil {
		r.activity.Addf("%s [%s]", res.Summary(), strings.Join(res.RowIDs, ", "))
	}
}
