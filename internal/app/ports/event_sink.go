package ports

import "farmstead/internal/domain/farm"

// EventSink delivers domain events to subscribers. Publish never
// reports subscriber failures to the caller.
type EventSink interface {
	Publish(event farm.Event)
}
