package memory

import (
	"context"

	"farmstead/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, events []farm.Event) error {
	defer r.store.acquire(ctx)()
	for _, e := range events {
		r.store.events[e.PlayerID] = append(r.store.events[e.PlayerID], e)
	}
	return nil
}

// ListByPlayerID returns newest first.
func (r EventRepo) ListByPlayerID(ctx context.Context, playerID farm.PlayerID, limit int) ([]farm.Event, error) {
	defer r.store.acquire(ctx)()
	all := r.store.events[playerID]
	out := make([]farm.Event, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
