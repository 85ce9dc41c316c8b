package gormrepo

import (
	"context"
	"errors"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetPlayer(ctx context.Context, playerID farm.PlayerID) (farm.Player, error) {
	var m model.Player
	err := getDBFromCtx(ctx, r.db).Where("player_id = ?", string(playerID)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.Player{}, ports.ErrNotFound
		}
		return farm.Player{}, err
	}
	return farm.Player{
		ID:       playerID,
		Position: farm.Position{X: int(m.X), Y: int(m.Y)},
		Energy:   farm.Energy{Current: int(m.Energy), Max: int(m.EnergyMax)},
		Money:    farm.Money(m.Money),
	}, nil
}

func (r PlayerRepo) SavePlayer(ctx context.Context, p farm.Player) error {
	m := model.Player{
		PlayerID:  string(p.ID),
		X:         int32(p.Position.X),
		Y:         int32(p.Position.Y),
		Energy:    int32(p.Energy.Current),
		EnergyMax: int32(p.Energy.Max),
		Money:     int64(p.Money),
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r PlayerRepo) PlayerExists(ctx context.Context, playerID farm.PlayerID) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).Model(&model.Player{}).
		Where("player_id = ?", string(playerID)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
