package memory

import (
	"context"

	"farmstead/internal/domain/farm"
)

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) InventoryRepo {
	return InventoryRepo{store: store}
}

func (r InventoryRepo) GetInventory(ctx context.Context, playerID farm.PlayerID) (*farm.Inventory, error) {
	defer r.store.acquire(ctx)()
	if inv, ok := r.store.inventories[playerID]; ok {
		return inv, nil
	}
	inv := farm.NewInventory(r.store.slotCount)
	r.store.inventories[playerID] = inv
	return inv, nil
}

func (r InventoryRepo) SaveInventory(ctx context.Context, playerID farm.PlayerID, inv *farm.Inventory) error {
	defer r.store.acquire(ctx)()
	r.store.inventories[playerID] = inv
	return nil
}
