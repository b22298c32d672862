package events

import (
	"fmt"
	"log"
	"sync"
)

// Bus is a simple event bus for UI services.
//
// Handlers run synchronously in the publisher's goroutine, in subscription
// order, so a handler observes the state the publisher just committed and
// finishes before Publish returns.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type, see TypeOf
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.call(handler, event)
	}
}

func (b *Bus) call(handler func(interface{}), event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("UI event handler panic for %T: %v", event, r)
		}
	}()
	handler(event)
}

// TypeOf returns the subscription key of an event: its full type name
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
