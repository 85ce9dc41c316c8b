package bus

import (
	"log"
	"sync"

	"farmstead/internal/domain/farm"
)

type Handler func(event farm.Event)

// Bus is an in-process dispatcher over the closed event-kind set.
// The subscriber list is snapshotted before dispatch, so subscribing
// during delivery never affects the in-flight event, and a panicking
// handler is isolated from its siblings and from the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[farm.EventKind][]Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[farm.EventKind][]Handler)}
}

func (b *Bus) Subscribe(kind farm.EventKind, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], h)
}

// SubscribeAll registers the handler for every known event kind.
func (b *Bus) SubscribeAll(h Handler) {
	for _, kind := range []farm.EventKind{
		farm.EventCropPlanted,
		farm.EventCropHarvested,
		farm.EventItemAdded,
		farm.EventItemRemoved,
		farm.EventMoneyChanged,
	} {
		b.Subscribe(kind, h)
	}
}

func (b *Bus) Publish(event farm.Event) {
	b.mu.RLock()
	registered := b.handlers[event.Kind]
	snapshot := make([]Handler, len(registered))
	copy(snapshot, registered)
	b.mu.RUnlock()

	for _, h := range snapshot {
		dispatch(h, event)
	}
}

func dispatch(h Handler, event farm.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("bus: subscriber panic on %s event: %v", event.Kind, r)
		}
	}()
	h(event)
}
