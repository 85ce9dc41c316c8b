package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []farm.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return err
		}
		rows = append(rows, model.DomainEvent{
			ID:         e.ID,
			PlayerID:   string(e.PlayerID),
			Kind:       string(e.Kind),
			OccurredAt: e.OccurredAt,
			Payload:    payload,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPlayerID(ctx context.Context, playerID farm.PlayerID, limit int) ([]farm.Event, error) {
	rows := []model.DomainEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.DomainEvent{PlayerID: string(playerID)}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]farm.Event, 0, len(rows))
	for _, row := range rows {
		payload, err := decodePayload(farm.EventKind(row.Kind), row.Payload)
		if err != nil {
			return nil, err
		}
		out = append(out, farm.Event{
			ID:         row.ID,
			Kind:       farm.EventKind(row.Kind),
			PlayerID:   farm.PlayerID(row.PlayerID),
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}

// decodePayload maps a stored kind back onto the closed payload set.
func decodePayload(kind farm.EventKind, data []byte) (farm.EventPayload, error) {
	switch kind {
	case farm.EventCropPlanted:
		var p farm.CropPlanted
		return p, json.Unmarshal(data, &p)
	case farm.EventCropHarvested:
		var p farm.CropHarvested
		return p, json.Unmarshal(data, &p)
	case farm.EventItemAdded:
		var p farm.ItemAdded
		return p, json.Unmarshal(data, &p)
	case farm.EventItemRemoved:
		var p farm.ItemRemoved
		return p, json.Unmarshal(data, &p)
	case farm.EventMoneyChanged:
		var p farm.MoneyChanged
		return p, json.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
}
