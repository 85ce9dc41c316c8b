package bus

import (
	"testing"
	"time"

	"farmstead/internal/domain/farm"
)

func plantedEvent() farm.Event {
	return farm.NewEvent("p1", time.Unix(1_700_000_000, 0), farm.CropPlanted{
		Position: farm.Position{X: 1, Y: 2},
		CropID:   "corn",
	})
}

func TestBus_DeliversToMatchingKindOnly(t *testing.T) {
	b := New()
	var planted, harvested int
	b.Subscribe(farm.EventCropPlanted, func(farm.Event) { planted++ })
	b.Subscribe(farm.EventCropHarvested, func(farm.Event) { harvested++ })

	b.Publish(plantedEvent())

	if planted != 1 {
		t.Fatalf("expected one delivery, got %d", planted)
	}
	if harvested != 0 {
		t.Fatalf("harvest subscriber must not fire, got %d", harvested)
	}
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	b := New()
	b.Publish(plantedEvent())
}

func TestBus_PanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	b := New()
	var delivered int
	b.Subscribe(farm.EventCropPlanted, func(farm.Event) { panic("boom") })
	b.Subscribe(farm.EventCropPlanted, func(farm.Event) { delivered++ })

	b.Publish(plantedEvent())

	if delivered != 1 {
		t.Fatalf("expected delivery despite sibling panic, got %d", delivered)
	}
}

func TestBus_SubscribeAllCoversEveryKind(t *testing.T) {
	b := New()
	seen := map[farm.EventKind]int{}
	b.SubscribeAll(func(event farm.Event) { seen[event.Kind]++ })

	now := time.Unix(1_700_000_000, 0)
	events := []farm.Event{
		farm.NewEvent("p1", now, farm.CropPlanted{Position: farm.Position{}, CropID: "corn"}),
		farm.NewEvent("p1", now, farm.CropHarvested{Position: farm.Position{}, ItemID: "corn", Quantity: 3}),
		farm.NewEvent("p1", now, farm.ItemAdded{PlayerID: "p1", ItemID: "corn", Quantity: 1}),
		farm.NewEvent("p1", now, farm.ItemRemoved{PlayerID: "p1", ItemID: "corn", Quantity: 1}),
		farm.NewEvent("p1", now, farm.MoneyChanged{PlayerID: "p1", OldAmount: 0, NewAmount: 5}),
	}
	for _, event := range events {
		b.Publish(event)
	}

	if len(seen) != 5 {
		t.Fatalf("expected all five kinds delivered, got %v", seen)
	}
	for kind, n := range seen {
		if n != 1 {
			t.Fatalf("kind %s delivered %d times", kind, n)
		}
	}
}

func TestBus_NilHandlerIgnored(t *testing.T) {
	b := New()
	b.Subscribe(farm.EventCropPlanted, nil)
	b.Publish(plantedEvent())
}
