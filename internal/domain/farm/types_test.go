package farm

import (
	"errors"
	"testing"
)

func TestIDConstructionRejectsBlank(t *testing.T) {
	if _, err := NewItemID("corn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, raw := range []string{"", "   ", "\t\n"} {
		if _, err := NewItemID(raw); !errors.Is(err, ErrBlankID) {
			t.Fatalf("expected ErrBlankID for %q, got %v", raw, err)
		}
	}
	if _, err := NewPlayerID(""); !errors.Is(err, ErrBlankID) {
		t.Fatalf("expected ErrBlankID for player id")
	}
	if id, err := NewCropID("  turnip "); err != nil || id != "turnip" {
		t.Fatalf("expected trimmed crop id, got %q (%v)", id, err)
	}
}

func TestMoneySubtract(t *testing.T) {
	m, err := NewMoney(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m = m.Add(50)
	m, err = m.Subtract(120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 30 {
		t.Fatalf("expected 30, got %d", m)
	}
	if _, err := m.Subtract(31); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := NewMoney(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestEnergyConsume(t *testing.T) {
	e, err := NewEnergy(10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err = e.Consume(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Current != 6 {
		t.Fatalf("expected current=6, got %d", e.Current)
	}
	if _, err := e.Consume(7); !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("expected ErrInsufficientEnergy, got %v", err)
	}
	e = e.Restore(100)
	if e.Current != e.Max {
		t.Fatalf("restore should cap at max, got %d/%d", e.Current, e.Max)
	}
}

func TestEnergyCurrentClampedToMax(t *testing.T) {
	e, err := NewEnergy(30, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Current != 20 {
		t.Fatalf("expected current clamped to 20, got %d", e.Current)
	}
}
