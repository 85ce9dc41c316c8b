package gormrepo

import (
	"context"
	"errors"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TileRepo struct {
	db *gorm.DB
}

func NewTileRepo(db *gorm.DB) TileRepo {
	return TileRepo{db: db}
}

// GetTile returns a default tile for coordinates that have never been
// saved; the row appears once the first mutation persists it.
func (r TileRepo) GetTile(ctx context.Context, pos farm.Position) (*farm.FarmTile, error) {
	var m model.FarmTile
	err := getDBFromCtx(ctx, r.db).Where("x = ? AND y = ?", pos.X, pos.Y).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.NewFarmTile(pos), nil
		}
		return nil, err
	}
	return tileFromModel(m), nil
}

func (r TileRepo) AllTiles(ctx context.Context) ([]*farm.FarmTile, error) {
	rows := []model.FarmTile{}
	if err := getDBFromCtx(ctx, r.db).Order("x, y").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*farm.FarmTile, 0, len(rows))
	for _, row := range rows {
		out = append(out, tileFromModel(row))
	}
	return out, nil
}

func (r TileRepo) SaveTile(ctx context.Context, tile *farm.FarmTile) error {
	m := tileToModel(tile)
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "x"}, {Name: "y"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r TileRepo) SaveAllTiles(ctx context.Context, tiles []*farm.FarmTile) error {
	if len(tiles) == 0 {
		return nil
	}
	rows := make([]model.FarmTile, 0, len(tiles))
	for _, tile := range tiles {
		rows = append(rows, tileToModel(tile))
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "x"}, {Name: "y"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
}

func (r TileRepo) TileExists(ctx context.Context, pos farm.Position) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).Model(&model.FarmTile{}).
		Where("x = ? AND y = ?", pos.X, pos.Y).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func tileToModel(tile *farm.FarmTile) model.FarmTile {
	m := model.FarmTile{
		X:       int32(tile.Position.X),
		Y:       int32(tile.Position.Y),
		StateID: tile.StateID,
		Watered: tile.Watered,
	}
	if crop := tile.Crop; crop != nil {
		m.HasCrop = true
		m.CropID = string(crop.ID)
		m.CropName = crop.Name
		m.CropStage = string(crop.Stage)
		m.DaysToGrow = int32(crop.DaysToGrow)
		m.DaysToWilt = int32(crop.DaysToWilt)
		m.HarvestYield = int32(crop.HarvestYield)
		m.HarvestItemID = string(crop.HarvestItemID)
		m.DaysPlanted = int32(crop.DaysPlanted)
		m.DaysSinceWatered = int32(crop.DaysSinceWatered)
		m.WateredToday = crop.WateredToday
		m.TimesWatered = int32(crop.TimesWatered)
	}
	return m
}

func tileFromModel(m model.FarmTile) *farm.FarmTile {
	tile := &farm.FarmTile{
		Position: farm.Position{X: int(m.X), Y: int(m.Y)},
		StateID:  m.StateID,
		Watered:  m.Watered,
	}
	if m.HasCrop {
		tile.Crop = &farm.Crop{
			ID:               farm.CropID(m.CropID),
			Name:             m.CropName,
			DaysToGrow:       int(m.DaysToGrow),
			DaysToWilt:       int(m.DaysToWilt),
			HarvestYield:     int(m.HarvestYield),
			HarvestItemID:    farm.ItemID(m.HarvestItemID),
			Stage:            farm.GrowthStage(m.CropStage),
			DaysPlanted:      int(m.DaysPlanted),
			DaysSinceWatered: int(m.DaysSinceWatered),
			WateredToday:     m.WateredToday,
			TimesWatered:     int(m.TimesWatered),
		}
	}
	return tile
}
