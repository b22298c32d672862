package storage

import (
	"log"

	"seltable/internal/eventbus"
)

// PersistRows saves the dataset carried by every RowsChangedEvent to b.
// Failures are logged and published as ErrorEvent.
func PersistRows(bus eventbus.EventBus, b Backend) func() {
	return bus.Subscribe(eventbus.EventRowsChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.RowsChangedEvent)
		if !ok {
			log.Printf("PersistRows: unexpected event %T", e)
			return
		}
		if err := b.Save(event.Rows); err != nil {
			log.Printf("Error saving rows: %v", err)
			bus.Publish(eventbus.ErrorEvent{Message: "could not save rows", Err: err})
		}
	})
}
