package api

import "sync"

// EventType identifies the kind of payload carried by a BroadcastEvent.
type EventType string

const (
	// EventTypeDivisionStep carries one bit-iteration of a long division.
	EventTypeDivisionStep EventType = "division_step"
	// EventTypeMultiplyStep carries one set-bit iteration of a multiplication.
	EventTypeMultiplyStep EventType = "multiply_step"
	// EventTypeResult carries the final result of an evaluated expression.
	EventTypeResult EventType = "result"
)

// BroadcastEvent is one message fanned out to subscribed WebSocket clients.
type BroadcastEvent struct {
	Type      EventType              `json:"type"`
	SessionID string                 `json:"sessionId"`
	Data      map[string]interface{} `json:"data"`
}

// Subscription is a client's registration for a slice of the event stream.
type Subscription struct {
	SessionID  string
	EventTypes map[EventType]bool
	Channel    chan BroadcastEvent
}

// Broadcaster fans calculation-trace events out to every subscriber whose
// filters match, without letting a slow client block the producer. The
// register/unregister/broadcast channel loop follows the teacher
// project's instruction-trace broadcaster, re-purposed from VM state
// changes to arithmetic kernel steps.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a broadcaster's event loop.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.SessionID != "" && sub.SessionID != event.SessionID {
					continue
				}
				if len(sub.EventTypes) > 0 && !sub.EventTypes[event.Type] {
					continue
				}
				select {
				case sub.Channel <- event:
				default:
					// slow subscriber: drop this step rather than stall the kernel
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe registers a new subscription; sessionID == "" means all
// sessions, and an empty eventTypes means all event types.
func (b *Broadcaster) Subscribe(sessionID string, eventTypes []EventType) *Subscription {
	eventTypeMap := make(map[EventType]bool, len(eventTypes))
	for _, et := range eventTypes {
		eventTypeMap[et] = true
	}
	sub := &Subscription{
		SessionID:  sessionID,
		EventTypes: eventTypeMap,
		Channel:    make(chan BroadcastEvent, 64),
	}
	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast publishes event to every matching subscriber, dropping it if
// the broadcaster's internal queue is already full.
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
	}
}

// BroadcastDivisionStep publishes one bit-iteration of a long division.
func (b *Broadcaster) BroadcastDivisionStep(sessionID string, bitIndex int, quotientBit bool, remainder string) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeDivisionStep,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"bitIndex":    bitIndex,
			"quotientBit": quotientBit,
			"remainder":   remainder,
		},
	})
}

// BroadcastMultiplyStep publishes one set-bit iteration of a multiplication.
func (b *Broadcaster) BroadcastMultiplyStep(sessionID string, bitIndex int, accumulator string) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeMultiplyStep,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"bitIndex":    bitIndex,
			"accumulator": accumulator,
		},
	})
}

// BroadcastResult publishes the final result of an evaluated expression.
func (b *Broadcaster) BroadcastResult(sessionID, expression, result string) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeResult,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"expression": expression,
			"result":     result,
		},
	})
}

// Close shuts the broadcaster down and disconnects every subscriber.
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
