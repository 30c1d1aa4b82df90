package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ Publisher = (*EventBus)(nil)

// EventBus is a synchronous event bus implementation. Object subscribers are
// notified in subscription order, then function handlers.
type EventBus struct {
	subscribers  map[string]Subscriber
	order        []string
	funcHandlers map[string][]EventHandler
	mu           sync.RWMutex
	logger       zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus() *EventBus {
	return NewEventBusWithLogger(log.Logger)
}

// NewEventBusWithLogger creates an event bus logging through the given logger
func NewEventBusWithLogger(logger zerolog.Logger) *EventBus {
	return &EventBus{
		subscribers:  make(map[string]Subscriber),
		funcHandlers: make(map[string][]EventHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a new subscriber to the event bus. Re-subscribing an ID
// replaces the previous subscriber in place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if _, exists := eb.subscribers[subscriber.ID()]; !exists {
		eb.order = append(eb.order, subscriber.ID())
	}
	eb.subscribers[subscriber.ID()] = subscriber
	eb.logger.Debug().
		Str("subscriber_id", subscriber.ID()).
		Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if _, exists := eb.subscribers[subscriberID]; !exists {
		return
	}
	delete(eb.subscribers, subscriberID)
	for i, id := range eb.order {
		if id == subscriberID {
			eb.order = append(eb.order[:i], eb.order[i+1:]...)
			break
		}
	}
	eb.logger.Debug().
		Str("subscriber_id", subscriberID).
		Msg("Subscriber removed from event bus")
}

// SubscribeFunc adds a function handler for specific event types
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)

	handlerID := fmt.Sprintf("%s_func_%d", eventType, len(eb.funcHandlers[eventType]))
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", handlerID).
		Msg("Function handler added to event bus")

	return handlerID
}

// Publish sends an event to all interested subscribers synchronously.
// Handlers must not subscribe or unsubscribe while being notified.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("match_id", event.MatchID()).
		Time("timestamp", event.Timestamp()).
		Msg("Publishing event")

	// Notify object subscribers
	for _, id := range eb.order {
		subscriber := eb.subscribers[id]
		if subscriber.InterestedIn(eventType) {
			// Run synchronously but catch panics to prevent one subscriber from breaking others
			func() {
				defer func() {
					if r := recover(); r != nil {
						eb.logger.Error().
							Str("subscriber_id", id).
							Str("event_type", eventType).
							Interface("panic", r).
							Msg("Subscriber panicked while handling event")
					}
				}()
				subscriber.HandleEvent(event)
			}()
		}
	}

	// Notify function handlers
	if handlers, exists := eb.funcHandlers[eventType]; exists {
		for i, handler := range handlers {
			func() {
				defer func() {
					if r := recover(); r != nil {
						eb.logger.Error().
							Str("event_type", eventType).
							Int("handler_index", i).
							Interface("panic", r).
							Msg("Function handler panicked while handling event")
					}
				}()
				handler(event)
			}()
		}
	}
}

// GetSubscriberCount returns the number of subscribers for debugging
func (eb *EventBus) GetSubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// GetFuncHandlerCount returns the number of function handlers for a specific event type
func (eb *EventBus) GetFuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.funcHandlers[eventType])
}
