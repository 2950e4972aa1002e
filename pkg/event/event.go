// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	ShipDestroyed Type = "ship_destroyed"
	SimRestarted  Type = "sim_restarted"
	SkinToggled   Type = "skin_toggled"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler and can remove it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

// subscriber pairs a handler with its subscription ID so cancellation can
// find it again (function values are not comparable).
type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and synchronous dispatching.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type and returns a
// Subscription whose Cancel removes it again.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

// unsubscribe removes the handler with the given ID for an event type.
func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.handlers[eventType]
	if !ok {
		return
	}

	for i, s := range subs {
		if s.id == id {
			// Rebuild rather than splice in place so a concurrent Publish
			// holding the old slice is unaffected.
			remaining := make([]subscriber, 0, len(subs)-1)
			remaining = append(remaining, subs[:i]...)
			remaining = append(remaining, subs[i+1:]...)
			b.handlers[eventType] = remaining
			return
		}
	}
}

// Publish sends an event to all subscribed handlers, synchronously and in
// subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// DestroyedEvent reports the ship crashing into a celestial body.
type DestroyedEvent struct {
	BaseEvent
	Body string // name of the body hit
	Tick uint64
}

// NewDestroyedEvent creates a new ship-destruction event
func NewDestroyedEvent(source interface{}, body string, tick uint64) *DestroyedEvent {
	return &DestroyedEvent{
		BaseEvent: BaseEvent{
			EventType: ShipDestroyed,
			Source:    source,
		},
		Body: body,
		Tick: tick,
	}
}

// RestartEvent reports the simulation being reset after a crash.
type RestartEvent struct {
	BaseEvent
	Tick uint64 // tick count at the moment of restart
}

// NewRestartEvent creates a new restart event
func NewRestartEvent(source interface{}, tick uint64) *RestartEvent {
	return &RestartEvent{
		BaseEvent: BaseEvent{
			EventType: SimRestarted,
			Source:    source,
		},
		Tick: tick,
	}
}

// SkinEvent reports the ship's cosmetic skin being toggled.
type SkinEvent struct {
	BaseEvent
	Skin int // index of the newly selected skin
}

// NewSkinEvent creates a new skin-toggle event
func NewSkinEvent(source interface{}, skin int) *SkinEvent {
	return &SkinEvent{
		BaseEvent: BaseEvent{
			EventType: SkinToggled,
			Source:    source,
		},
		Skin: skin,
	}
}
