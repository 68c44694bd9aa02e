// Package events provides a typed in-process publish/subscribe dispatcher for
// domain events. Components receive a Publisher or Dispatcher handle through
// their constructors; there is no package-level singleton.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic identifies a domain event stream
type Topic string

const (
	// TopicWorkscheduleDetailCreated fires after a workschedule detail and its
	// time details have been persisted and the payroll totals recalculated
	TopicWorkscheduleDetailCreated Topic = "workschedule_detail.created"
)

// WorkscheduleDetailCreated is the payload for TopicWorkscheduleDetailCreated
type WorkscheduleDetailCreated struct {
	DetailID       uuid.UUID
	WorkscheduleID uuid.UUID
	UserID         uuid.UUID
	ScheduleDate   time.Time
}

// Handler processes a published event. Handlers run synchronously on the
// publishing goroutine and must not propagate failures back to the mutation;
// they log and move on.
type Handler func(event interface{})

// Publisher is the write side of the dispatcher
type Publisher interface {
	Publish(topic Topic, event interface{})
}

// Dispatcher is a mutex-guarded fan-out of events to subscribed handlers
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Topic][]Handler)}
}

// Subscribe registers a handler for a topic
func (d *Dispatcher) Subscribe(topic Topic, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[topic] = append(d.handlers[topic], handler)
}

// Publish delivers the event to every handler subscribed to the topic, in
// subscription order
func (d *Dispatcher) Publish(topic Topic, event interface{}) {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers[topic]))
	copy(handlers, d.handlers[topic])
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
