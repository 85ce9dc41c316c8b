package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepo struct {
	db        *gorm.DB
	items     ports.ItemCatalog
	slotCount int
}

// NewInventoryRepo needs the item catalog to rehydrate slot templates;
// only the item id and quantity are persisted.
func NewInventoryRepo(db *gorm.DB, items ports.ItemCatalog, slotCount int) InventoryRepo {
	return InventoryRepo{db: db, items: items, slotCount: slotCount}
}

type slotRecord struct {
	ItemID   string `json:"item_id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

func (r InventoryRepo) GetInventory(ctx context.Context, playerID farm.PlayerID) (*farm.Inventory, error) {
	var m model.PlayerInventory
	err := getDBFromCtx(ctx, r.db).Where("player_id = ?", string(playerID)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.NewInventory(r.slotCount), nil
		}
		return nil, err
	}

	records := []slotRecord{}
	if len(m.Slots) > 0 {
		if err := json.Unmarshal(m.Slots, &records); err != nil {
			return nil, err
		}
	}
	inv := farm.NewInventory(int(m.SlotCount))
	for i, rec := range records {
		if i >= len(inv.Slots) || rec.ItemID == "" || rec.Quantity <= 0 {
			continue
		}
		item, ok := r.items.Get(farm.ItemID(rec.ItemID))
		if !ok {
			// Item vanished from the catalog; the slot comes back empty.
			continue
		}
		inv.Slots[i] = farm.InventorySlot{Item: item, Quantity: rec.Quantity}
	}
	return inv, nil
}

func (r InventoryRepo) SaveInventory(ctx context.Context, playerID farm.PlayerID, inv *farm.Inventory) error {
	records := make([]slotRecord, len(inv.Slots))
	for i, slot := range inv.Slots {
		if slot.Empty() {
			continue
		}
		records[i] = slotRecord{ItemID: string(slot.Item.ID), Quantity: slot.Quantity}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	m := model.PlayerInventory{
		PlayerID:  string(playerID),
		SlotCount: int32(len(inv.Slots)),
		Slots:     payload,
		UpdatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}
