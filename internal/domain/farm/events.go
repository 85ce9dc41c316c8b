package farm

import (
	"time"

	"github.com/segmentio/ksuid"
)

type EventKind string

const (
	EventCropPlanted   EventKind = "crop_planted"
	EventCropHarvested EventKind = "crop_harvested"
	EventItemAdded     EventKind = "item_added"
	EventItemRemoved   EventKind = "item_removed"
	EventMoneyChanged  EventKind = "money_changed"
)

// EventPayload is the closed set of event bodies.
type EventPayload interface {
	Kind() EventKind
}

type CropPlanted struct {
	Position Position `json:"position"`
	CropID   CropID   `json:"crop_id"`
}

func (CropPlanted) Kind() EventKind { return EventCropPlanted }

type CropHarvested struct {
	Position Position `json:"position"`
	ItemID   ItemID   `json:"item_id"`
	Quantity int      `json:"quantity"`
}

func (CropHarvested) Kind() EventKind { return EventCropHarvested }

type ItemAdded struct {
	PlayerID PlayerID `json:"player_id"`
	ItemID   ItemID   `json:"item_id"`
	Quantity int      `json:"quantity"`
}

func (ItemAdded) Kind() EventKind { return EventItemAdded }

type ItemRemoved struct {
	PlayerID PlayerID `json:"player_id"`
	ItemID   ItemID   `json:"item_id"`
	Quantity int      `json:"quantity"`
}

func (ItemRemoved) Kind() EventKind { return EventItemRemoved }

type MoneyChanged struct {
	PlayerID  PlayerID `json:"player_id"`
	OldAmount Money    `json:"old_amount"`
	NewAmount Money    `json:"new_amount"`
}

func (MoneyChanged) Kind() EventKind { return EventMoneyChanged }

type Event struct {
	ID         string       `json:"id"`
	Kind       EventKind    `json:"kind"`
	PlayerID   PlayerID     `json:"player_id"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    EventPayload `json:"payload"`
}

func NewEvent(playerID PlayerID, occurredAt time.Time, payload EventPayload) Event {
	return Event{
		ID:         ksuid.New().String(),
		Kind:       payload.Kind(),
		PlayerID:   playerID,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}
