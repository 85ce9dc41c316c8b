package farm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBlankID            = errors.New("identifier must not be blank")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientEnergy = errors.New("insufficient energy")
)

type ItemID string

type CropID string

type ToolID string

type PlayerID string

type NPCID string

func NewItemID(raw string) (ItemID, error) {
	v, err := requireNonBlank(raw, "item id")
	return ItemID(v), err
}

func NewCropID(raw string) (CropID, error) {
	v, err := requireNonBlank(raw, "crop id")
	return CropID(v), err
}

func NewToolID(raw string) (ToolID, error) {
	v, err := requireNonBlank(raw, "tool id")
	return ToolID(v), err
}

func NewPlayerID(raw string) (PlayerID, error) {
	v, err := requireNonBlank(raw, "player id")
	return PlayerID(v), err
}

func NewNPCID(raw string) (NPCID, error) {
	v, err := requireNonBlank(raw, "npc id")
	return NPCID(v), err
}

func requireNonBlank(raw, what string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrBlankID, what)
	}
	return v, nil
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Money is a non-negative amount of currency.
type Money int

func NewMoney(amount int) (Money, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: money %d", ErrNegativeAmount, amount)
	}
	return Money(amount), nil
}

func (m Money) Add(amount Money) Money {
	return m + amount
}

func (m Money) Subtract(amount Money) (Money, error) {
	if amount > m {
		return m, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, m, amount)
	}
	return m - amount, nil
}

type Energy struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

func NewEnergy(current, max int) (Energy, error) {
	if current < 0 || max < 0 {
		return Energy{}, fmt.Errorf("%w: energy %d/%d", ErrNegativeAmount, current, max)
	}
	if current > max {
		current = max
	}
	return Energy{Current: current, Max: max}, nil
}

func (e Energy) Consume(amount int) (Energy, error) {
	if amount < 0 {
		return e, fmt.Errorf("%w: consume %d", ErrNegativeAmount, amount)
	}
	if e.Current < amount {
		return e, fmt.Errorf("%w: have %d, need %d", ErrInsufficientEnergy, e.Current, amount)
	}
	e.Current -= amount
	return e, nil
}

func (e Energy) Restore(amount int) Energy {
	if amount <= 0 {
		return e
	}
	e.Current += amount
	if e.Current > e.Max {
		e.Current = e.Max
	}
	return e
}
