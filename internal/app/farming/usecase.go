package farming

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var (
	ErrInvalidRequest       = errors.New("invalid farming request")
	ErrActionNotAllowed     = errors.New("action not allowed in current tile state")
	ErrNoNextState          = errors.New("no next tile state for action")
	ErrCatalogUnavailable   = errors.New("catalog not configured")
	ErrBaselineStateMissing = errors.New("expected tile state missing from catalog")
)

// UseCase orchestrates the player-facing farming actions and the daily
// batch update. Tile-state resolution is two-tier: the authored
// transition list first, then the type-keyed catalog fallback.
type UseCase struct {
	TxManager   ports.TxManager
	Tiles       ports.TileRepository
	Inventories ports.InventoryRepository
	States      ports.TileStateCatalog
	Crops       ports.CropCatalog
	Items       ports.ItemCatalog
	Events      ports.EventRepository
	Sink        ports.EventSink
	Metrics     ports.ActionMetrics
	Now         func() time.Time
}

func (u UseCase) Plow(ctx context.Context, req ActionRequest) (ActionResponse, error) {
	_, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return ActionResponse{}, ErrInvalidRequest
	}
	pos := farm.Position{X: req.X, Y: req.Y}

	var out ActionResponse
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		tile, err := u.Tiles.GetTile(txCtx, pos)
		if err != nil {
			return err
		}
		current, err := u.currentState(tile, farm.StateNormal)
		if err != nil {
			return err
		}
		if !tile.CanPlow(current) {
			return fmt.Errorf("%w: plow at (%d,%d)", ErrActionNotAllowed, pos.X, pos.Y)
		}
		next, err := u.nextState(current, farm.ActionPlow, farm.StatePlowed)
		if err != nil {
			return err
		}
		if err := tile.Plow(current, next); err != nil {
			return fmt.Errorf("%w: %v", ErrActionNotAllowed, err)
		}
		if err := u.Tiles.SaveTile(txCtx, tile); err != nil {
			return err
		}
		out = ActionResponse{Tile: toTileView(tile)}
		return nil
	})
	return u.finish(farm.ActionPlow, out, err)
}

func (u UseCase) Water(ctx context.Context, req ActionRequest) (ActionResponse, error) {
	_, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return ActionResponse{}, ErrInvalidRequest
	}
	pos := farm.Position{X: req.X, Y: req.Y}

	var out ActionResponse
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		tile, err := u.Tiles.GetTile(txCtx, pos)
		if err != nil {
			return err
		}
		current, err := u.currentState(tile, farm.StatePlowed)
		if err != nil {
			return err
		}
		if !tile.CanWater(current) {
			return fmt.Errorf("%w: water at (%d,%d)", ErrActionNotAllowed, pos.X, pos.Y)
		}
		// Watering a planted tile lands in a different state than
		// watering a bare one.
		fallback := farm.StateWatered
		if tile.Planted() {
			fallback = farm.StateSeededWatered
		}
		next, err := u.nextState(current, farm.ActionWater, fallback)
		if err != nil {
			return err
		}
		if err := tile.Water(current, next); err != nil {
			return fmt.Errorf("%w: %v", ErrActionNotAllowed, err)
		}
		if err := u.Tiles.SaveTile(txCtx, tile); err != nil {
			return err
		}
		out = ActionResponse{Tile: toTileView(tile)}
		return nil
	})
	return u.finish(farm.ActionWater, out, err)
}

// Plant resolves a fresh crop instance from the crop catalog and
// delegates to PlantCrop.
func (u UseCase) Plant(ctx context.Context, req PlantRequest) (ActionResponse, error) {
	cropID, err := farm.NewCropID(req.CropID)
	if err != nil {
		return ActionResponse{}, ErrInvalidRequest
	}
	if u.Crops == nil {
		return ActionResponse{}, fmt.Errorf("%w: crops", ErrCatalogUnavailable)
	}
	crop, ok := u.Crops.Get(cropID)
	if !ok {
		return ActionResponse{}, fmt.Errorf("%w: crop %s", ports.ErrNotFound, cropID)
	}
	return u.PlantCrop(ctx, ActionRequest{PlayerID: req.PlayerID, X: req.X, Y: req.Y}, crop)
}

func (u UseCase) PlantCrop(ctx context.Context, req ActionRequest, crop *farm.Crop) (ActionResponse, error) {
	playerID, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return ActionResponse{}, ErrInvalidRequest
	}
	if crop == nil {
		return ActionResponse{}, fmt.Errorf("%w: crop must not be nil", ErrInvalidRequest)
	}
	pos := farm.Position{X: req.X, Y: req.Y}

	var out ActionResponse
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		tile, err := u.Tiles.GetTile(txCtx, pos)
		if err != nil {
			return err
		}
		current, err := u.currentState(tile, farm.StatePlowed)
		if err != nil {
			return err
		}
		if !tile.CanPlant(current) {
			return fmt.Errorf("%w: plant at (%d,%d)", ErrActionNotAllowed, pos.X, pos.Y)
		}
		next, err := u.nextState(current, farm.ActionPlant, farm.StateSeeded)
		if err != nil {
			return err
		}
		if err := tile.Plant(crop, current, next); err != nil {
			return fmt.Errorf("%w: %v", ErrActionNotAllowed, err)
		}
		if err := u.Tiles.SaveTile(txCtx, tile); err != nil {
			return err
		}
		events := []farm.Event{
			farm.NewEvent(playerID, u.now(), farm.CropPlanted{Position: pos, CropID: crop.ID}),
		}
		if err := u.appendEvents(txCtx, events); err != nil {
			return err
		}
		out = ActionResponse{Tile: toTileView(tile), Events: events}
		return nil
	})
	return u.finish(farm.ActionPlant, out, err)
}

// Harvest clears the tile's crop, forces the stored state back to the
// catalog's plowed entry when one exists, and credits the yield to the
// player's inventory best-effort: a catalog miss on the harvested item
// is logged and does not fail the harvest.
func (u UseCase) Harvest(ctx context.Context, req ActionRequest) (ActionResponse, error) {
	playerID, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return ActionResponse{}, ErrInvalidRequest
	}
	pos := farm.Position{X: req.X, Y: req.Y}

	var out ActionResponse
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		tile, err := u.Tiles.GetTile(txCtx, pos)
		if err != nil {
			return err
		}
		current, err := u.currentState(tile, farm.StateNormal)
		if err != nil {
			return err
		}
		if !tile.CanHarvest(current) {
			return fmt.Errorf("%w: harvest at (%d,%d)", ErrActionNotAllowed, pos.X, pos.Y)
		}
		itemID, quantity, err := tile.Harvest()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrActionNotAllowed, err)
		}
		if plowed, ok := u.States.ByType(farm.StatePlowed); ok {
			tile.StateID = plowed.ID
		}
		if err := u.Tiles.SaveTile(txCtx, tile); err != nil {
			return err
		}

		events := []farm.Event{
			farm.NewEvent(playerID, u.now(), farm.CropHarvested{Position: pos, ItemID: itemID, Quantity: quantity}),
		}
		credited, err := u.creditHarvest(txCtx, playerID, itemID, quantity)
		if err != nil {
			return err
		}
		if credited {
			events = append(events, farm.NewEvent(playerID, u.now(), farm.ItemAdded{PlayerID: playerID, ItemID: itemID, Quantity: quantity}))
		}
		if err := u.appendEvents(txCtx, events); err != nil {
			return err
		}
		out = ActionResponse{Tile: toTileView(tile), Events: events}
		return nil
	})
	return u.finish(farm.ActionHarvest, out, err)
}

func (u UseCase) creditHarvest(ctx context.Context, playerID farm.PlayerID, itemID farm.ItemID, quantity int) (bool, error) {
	if u.Items == nil || u.Inventories == nil {
		log.Printf("farming: item catalog or inventory repo not wired, skipping harvest credit for %s", itemID)
		return false, nil
	}
	item, ok := u.Items.Get(itemID)
	if !ok {
		log.Printf("farming: harvested item %q missing from item catalog, skipping inventory credit", itemID)
		return false, nil
	}
	inv, err := u.Inventories.GetInventory(ctx, playerID)
	if err != nil {
		return false, err
	}
	if !inv.AddItem(item, quantity) {
		log.Printf("farming: inventory of player %s overflowed crediting %d x %s", playerID, quantity, itemID)
	}
	if err := u.Inventories.SaveInventory(ctx, playerID, inv); err != nil {
		return false, err
	}
	return true, nil
}

// AdvanceDays runs the daily tick over every known tile and persists
// the whole set in one batch save. Tiles whose resolved state permits
// growth get their stored state promoted to growing or mature.
func (u UseCase) AdvanceDays(ctx context.Context, req AdvanceRequest) (AdvanceResponse, error) {
	if req.Days <= 0 {
		return AdvanceResponse{}, ErrInvalidRequest
	}
	if u.States == nil {
		return AdvanceResponse{}, fmt.Errorf("%w: tile states", ErrCatalogUnavailable)
	}

	var out AdvanceResponse
	err := u.runInTx(ctx, func(txCtx context.Context) error {
		tiles, err := u.Tiles.AllTiles(txCtx)
		if err != nil {
			return err
		}
		for _, tile := range tiles {
			tile.UpdateCrop(req.Days)
			if !tile.Planted() {
				continue
			}
			current, ok := u.States.ByID(tile.StateID)
			if !ok || !current.AllowCropGrowth {
				continue
			}
			target := farm.StateGrowing
			if tile.Crop.Mature() {
				target = farm.StateMature
			}
			if next, ok := u.States.ByType(target); ok {
				tile.StateID = next.ID
			}
		}
		if err := u.Tiles.SaveAllTiles(txCtx, tiles); err != nil {
			return err
		}
		out = AdvanceResponse{Days: req.Days, TilesUpdated: len(tiles)}
		return nil
	})
	if err != nil {
		return AdvanceResponse{}, err
	}
	return out, nil
}

func (u UseCase) Tile(ctx context.Context, req TileRequest) (TileView, error) {
	tile, err := u.Tiles.GetTile(ctx, farm.Position{X: req.X, Y: req.Y})
	if err != nil {
		return TileView{}, err
	}
	return toTileView(tile), nil
}

// currentState resolves the tile's stored state id, falling back to the
// type-keyed baseline when the id is missing from the catalog.
func (u UseCase) currentState(tile *farm.FarmTile, fallback farm.TileStateType) (*farm.TileState, error) {
	if u.States == nil {
		return nil, fmt.Errorf("%w: tile states", ErrCatalogUnavailable)
	}
	if state, ok := u.States.ByID(tile.StateID); ok {
		return state, nil
	}
	if state, ok := u.States.ByType(fallback); ok {
		return state, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrBaselineStateMissing, fallback)
}

func (u UseCase) nextState(current *farm.TileState, action farm.TileAction, fallback farm.TileStateType) (*farm.TileState, error) {
	if next := current.NextForAction(action); next != nil {
		return next, nil
	}
	if next, ok := u.States.ByType(fallback); ok {
		return next, nil
	}
	return nil, fmt.Errorf("%w: %s from %s", ErrNoNextState, action, current.ID)
}

func (u UseCase) appendEvents(ctx context.Context, events []farm.Event) error {
	if u.Events == nil {
		return nil
	}
	return u.Events.Append(ctx, events)
}

func (u UseCase) finish(action farm.TileAction, out ActionResponse, err error) (ActionResponse, error) {
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return ActionResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(action)
	}
	if u.Sink != nil {
		for _, event := range out.Events {
			u.Sink.Publish(event)
		}
	}
	return out, nil
}

func (u UseCase) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.TxManager == nil {
		return fn(ctx)
	}
	return u.TxManager.RunInTx(ctx, fn)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
