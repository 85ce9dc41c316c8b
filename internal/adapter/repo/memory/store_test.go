package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

func TestTileRepo_GetTileLazilyCreatesDefault(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	repo := NewTileRepo(store)
	ctx := context.Background()

	tile, err := repo.GetTile(ctx, farm.Position{X: 4, Y: 7})
	if err != nil {
		t.Fatalf("get tile: %v", err)
	}
	if tile.StateID != farm.DefaultTileStateID {
		t.Fatalf("expected default state, got %q", tile.StateID)
	}
	if tile.Position != (farm.Position{X: 4, Y: 7}) {
		t.Fatalf("unexpected position: %+v", tile.Position)
	}

	// The lazily created tile is registered and shows up in AllTiles.
	exists, err := repo.TileExists(ctx, farm.Position{X: 4, Y: 7})
	if err != nil {
		t.Fatalf("tile exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected tile registered after lazy create")
	}
}

func TestTileRepo_AllTilesKeepsCreationOrder(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	repo := NewTileRepo(store)
	ctx := context.Background()

	positions := []farm.Position{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 5}}
	for _, pos := range positions {
		if _, err := repo.GetTile(ctx, pos); err != nil {
			t.Fatalf("get tile %+v: %v", pos, err)
		}
	}

	tiles, err := repo.AllTiles(ctx)
	if err != nil {
		t.Fatalf("all tiles: %v", err)
	}
	if len(tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(tiles))
	}
	for i, pos := range positions {
		if tiles[i].Position != pos {
			t.Fatalf("tile %d: expected %+v, got %+v", i, pos, tiles[i].Position)
		}
	}
}

func TestTileRepo_SaveAllTiles(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	repo := NewTileRepo(store)
	ctx := context.Background()

	tile, err := repo.GetTile(ctx, farm.Position{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("get tile: %v", err)
	}
	tile.StateID = "plowed"
	if err := repo.SaveAllTiles(ctx, []*farm.FarmTile{tile}); err != nil {
		t.Fatalf("save all: %v", err)
	}

	got, err := repo.GetTile(ctx, farm.Position{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("get tile: %v", err)
	}
	if got.StateID != "plowed" {
		t.Fatalf("expected saved state, got %q", got.StateID)
	}
}

func TestInventoryRepo_LazilyCreatesWithStoreSlotCount(t *testing.T) {
	store := NewStore(5)
	repo := NewInventoryRepo(store)

	inv, err := repo.GetInventory(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get inventory: %v", err)
	}
	if len(inv.Slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(inv.Slots))
	}
}

func TestPlayerRepo_UnknownPlayerReturnsNotFound(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	repo := NewPlayerRepo(store)

	_, err := repo.GetPlayer(context.Background(), "ghost")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ports.ErrNotFound, got %v", err)
	}

	exists, err := repo.PlayerExists(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("player exists: %v", err)
	}
	if exists {
		t.Fatalf("expected player absent")
	}
}

func TestEventRepo_ListNewestFirstWithLimit(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	repo := NewEventRepo(store)
	ctx := context.Background()
	base := time.Unix(1_700_000_000, 0)

	for i := 1; i <= 4; i++ {
		event := farm.NewEvent("p1", base.Add(time.Duration(i)*time.Hour), farm.ItemAdded{
			PlayerID: "p1", ItemID: "corn", Quantity: i,
		})
		if err := repo.Append(ctx, []farm.Event{event}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.ListByPlayerID(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Payload.(farm.ItemAdded).Quantity != 4 {
		t.Fatalf("expected newest first, got %+v", events[0].Payload)
	}

	other, err := repo.ListByPlayerID(ctx, "p2", 10)
	if err != nil {
		t.Fatalf("list other player: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty journal for other player, got %d", len(other))
	}
}

func TestStore_ConcurrentRepoAccessOutsideTx(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	tiles := NewTileRepo(store)
	inventories := NewInventoryRepo(store)
	events := NewEventRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	const workers = 4
	const rounds = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if _, err := tiles.GetTile(ctx, farm.Position{X: w, Y: i}); err != nil {
					t.Errorf("get tile: %v", err)
				}
				if _, err := inventories.GetInventory(ctx, farm.PlayerID("p1")); err != nil {
					t.Errorf("get inventory: %v", err)
				}
				if _, err := events.ListByPlayerID(ctx, "p1", 5); err != nil {
					t.Errorf("list events: %v", err)
				}
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				err := tx.RunInTx(ctx, func(txCtx context.Context) error {
					all, err := tiles.AllTiles(txCtx)
					if err != nil {
						return err
					}
					return tiles.SaveAllTiles(txCtx, all)
				})
				if err != nil {
					t.Errorf("run in tx: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	all, err := tiles.AllTiles(ctx)
	if err != nil {
		t.Fatalf("all tiles: %v", err)
	}
	if len(all) != workers*rounds {
		t.Fatalf("expected %d lazily created tiles, got %d", workers*rounds, len(all))
	}
}

func TestTxManager_RepoCallsInsideTxDoNotDeadlock(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	tiles := NewTileRepo(store)
	inventories := NewInventoryRepo(store)
	players := NewPlayerRepo(store)
	events := NewEventRepo(store)
	tx := NewTxManager(store)

	err := tx.RunInTx(context.Background(), func(txCtx context.Context) error {
		tile, err := tiles.GetTile(txCtx, farm.Position{X: 1, Y: 1})
		if err != nil {
			return err
		}
		tile.StateID = "plowed"
		if err := tiles.SaveTile(txCtx, tile); err != nil {
			return err
		}
		inv, err := inventories.GetInventory(txCtx, "p1")
		if err != nil {
			return err
		}
		if err := inventories.SaveInventory(txCtx, "p1", inv); err != nil {
			return err
		}
		energy, _ := farm.NewEnergy(50, 100)
		money, _ := farm.NewMoney(10)
		if err := players.SavePlayer(txCtx, farm.NewPlayer("p1", farm.Position{}, energy, money)); err != nil {
			return err
		}
		event := farm.NewEvent("p1", time.Unix(1_700_000_000, 0), farm.ItemAdded{PlayerID: "p1", ItemID: "corn", Quantity: 1})
		return events.Append(txCtx, []farm.Event{event})
	})
	if err != nil {
		t.Fatalf("run in tx: %v", err)
	}

	tile, err := tiles.GetTile(context.Background(), farm.Position{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("get tile: %v", err)
	}
	if tile.StateID != "plowed" {
		t.Fatalf("expected tx writes visible, got %q", tile.StateID)
	}
}

func TestTxManager_RunsFunctionUnderLock(t *testing.T) {
	store := NewStore(farm.DefaultSlotCount)
	tx := NewTxManager(store)

	var ran bool
	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("run in tx: %v", err)
	}
	if !ran {
		t.Fatalf("expected function executed")
	}

	wantErr := errors.New("rollback")
	if err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		return wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("expected error surfaced, got %v", err)
	}
}
