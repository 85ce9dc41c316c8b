package ports

import (
	"context"

	"farmstead/internal/domain/farm"
)

// TileRepository owns the tile map. GetTile creates a default tile
// lazily when the coordinate has never been touched; tiles are never
// deleted.
type TileRepository interface {
	GetTile(ctx context.Context, pos farm.Position) (*farm.FarmTile, error)
	AllTiles(ctx context.Context) ([]*farm.FarmTile, error)
	SaveTile(ctx context.Context, tile *farm.FarmTile) error
	SaveAllTiles(ctx context.Context, tiles []*farm.FarmTile) error
	TileExists(ctx context.Context, pos farm.Position) (bool, error)
}

type InventoryRepository interface {
	GetInventory(ctx context.Context, playerID farm.PlayerID) (*farm.Inventory, error)
	SaveInventory(ctx context.Context, playerID farm.PlayerID, inv *farm.Inventory) error
}

type PlayerRepository interface {
	GetPlayer(ctx context.Context, playerID farm.PlayerID) (farm.Player, error)
	SavePlayer(ctx context.Context, player farm.Player) error
	PlayerExists(ctx context.Context, playerID farm.PlayerID) (bool, error)
}

type EventRepository interface {
	Append(ctx context.Context, events []farm.Event) error
	ListByPlayerID(ctx context.Context, playerID farm.PlayerID, limit int) ([]farm.Event, error)
}
