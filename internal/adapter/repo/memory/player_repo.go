package memory

import (
	"context"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetPlayer(ctx context.Context, playerID farm.PlayerID) (farm.Player, error) {
	defer r.store.acquire(ctx)()
	p, ok := r.store.players[playerID]
	if !ok {
		return farm.Player{}, ports.ErrNotFound
	}
	return p, nil
}

func (r PlayerRepo) SavePlayer(ctx context.Context, p farm.Player) error {
	defer r.store.acquire(ctx)()
	r.store.players[p.ID] = p
	return nil
}

func (r PlayerRepo) PlayerExists(ctx context.Context, playerID farm.PlayerID) (bool, error) {
	defer r.store.acquire(ctx)()
	_, ok := r.store.players[playerID]
	return ok, nil
}
