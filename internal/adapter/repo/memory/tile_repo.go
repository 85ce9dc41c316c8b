package memory

import (
	"context"

	"farmstead/internal/domain/farm"
)

type TileRepo struct {
	store *Store
}

func NewTileRepo(store *Store) TileRepo {
	return TileRepo{store: store}
}

// GetTile creates and remembers a default tile on first access, so the
// daily batch update sees every touched coordinate.
func (r TileRepo) GetTile(ctx context.Context, pos farm.Position) (*farm.FarmTile, error) {
	defer r.store.acquire(ctx)()
	if tile, ok := r.store.tiles[pos]; ok {
		return tile, nil
	}
	tile := farm.NewFarmTile(pos)
	r.store.tiles[pos] = tile
	r.store.tileOrder = append(r.store.tileOrder, pos)
	return tile, nil
}

func (r TileRepo) AllTiles(ctx context.Context) ([]*farm.FarmTile, error) {
	defer r.store.acquire(ctx)()
	out := make([]*farm.FarmTile, 0, len(r.store.tileOrder))
	for _, pos := range r.store.tileOrder {
		out = append(out, r.store.tiles[pos])
	}
	return out, nil
}

func (r TileRepo) SaveTile(ctx context.Context, tile *farm.FarmTile) error {
	defer r.store.acquire(ctx)()
	r.saveTileLocked(tile)
	return nil
}

func (r TileRepo) SaveAllTiles(ctx context.Context, tiles []*farm.FarmTile) error {
	defer r.store.acquire(ctx)()
	for _, tile := range tiles {
		r.saveTileLocked(tile)
	}
	return nil
}

func (r TileRepo) TileExists(ctx context.Context, pos farm.Position) (bool, error) {
	defer r.store.acquire(ctx)()
	_, ok := r.store.tiles[pos]
	return ok, nil
}

func (r TileRepo) saveTileLocked(tile *farm.FarmTile) {
	if _, ok := r.store.tiles[tile.Position]; !ok {
		r.store.tileOrder = append(r.store.tileOrder, tile.Position)
	}
	r.store.tiles[tile.Position] = tile
}
