package service

import (
	"sync"
	"time"

	"github.com/bnema/fetchbot/internal/domain"
)

// Event is one state transition of a download request.
type Event struct {
	RequestID string
	State     domain.State
	Message   string
	At        time.Time
	// Final marks the last event of a request. Subscribers may stop reading.
	Final bool
}

type EventPublisher interface {
	Publish(requestID string, event Event)
}

// EventBus fans request events out to subscribers keyed by request ID and
// keeps the latest event of every request still in flight.
type EventBus struct {
	subscribers map[string][]chan Event
	last        map[string]Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
		last:        make(map[string]Event),
	}
}

func (eb *EventBus) Subscribe(requestID string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 16)
	eb.subscribers[requestID] = append(eb.subscribers[requestID], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(requestID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[requestID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[requestID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[requestID]) == 0 {
		delete(eb.subscribers, requestID)
	}
}

func (eb *EventBus) Publish(requestID string, event Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if event.Final {
		delete(eb.last, requestID)
	} else {
		eb.last[requestID] = event
	}

	for _, ch := range eb.subscribers[requestID] {
		select {
		case ch <- event:
		default:
			// Drop event if subscriber is slow
		}
	}
}

// Last returns the latest event of a request that has not finished yet.
func (eb *EventBus) Last(requestID string) (Event, bool) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	ev, ok := eb.last[requestID]
	return ev, ok
}

// InFlight returns the latest event of every unfinished request.
func (eb *EventBus) InFlight() []Event {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	out := make([]Event, 0, len(eb.last))
	for _, ev := range eb.last {
		out = append(out, ev)
	}
	return out
}
