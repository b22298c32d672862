package events

// EventBus publishes UI-local notifications such as selection changes
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

var _ EventBus = (*Bus)(nil)
