package handlers

import (
	"fmt"

	"seltable/internal/eventbus"
	"seltable/internal/table"
)

// StatusSink receives status bar messages
type StatusSink interface {
	SetStatus(msg string)
}

// EventHandler turns domain and table events into status messages
type EventHandler struct {
	status StatusSink
}

// NewEventHandler creates a new event handler
func NewEventHandler(status StatusSink) *EventHandler {
	return &EventHandler{status: status}
}

// HandleEvent processes domain events forwarded to the UI
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.status.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		} else {
			h.status.SetStatus("Error: " + e.Message)
		}
	case eventbus.ConfigSavedEvent:
		h.status.SetStatus("Settings saved")
	case eventbus.RowsLoadedEvent:
		h.status.SetStatus(fmt.Sprintf("Loaded %d rows from %s", e.Count, e.Source))
	}
}

// HandleTableEvent processes synchronous table events
func (h *EventHandler) HandleTableEvent(event interface{}) {
	switch e := event.(type) {
	case table.SelectionChangedEvent:
		h.status.SetStatus(selectionStatus(e.State.Visible, e.State.Hidden))
	case table.SelectionClearedEvent:
		h.status.SetStatus("Selection cleared")
	case table.RowsRemovedEvent:
		h.status.SetStatus(fmt.Sprintf("Removed %d rows", len(e.IDs)))
	}
}

func selectionStatus(visible, hidden int) string {
	if hidden > 0 {
		return fmt.Sprintf("%d selected (%d not displayed)", visible+hidden, hidden)
	}
	return fmt.Sprintf("%d selected", visible)
}
