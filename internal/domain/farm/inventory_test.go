package farm

import "testing"

func stackableItem(t *testing.T, id string, maxStack int) *Item {
	t.Helper()
	item, err := NewItem(ItemID(id), id, "", TagStackable, maxStack)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	return item
}

func TestAddItemTopsUpExistingStacks(t *testing.T) {
	inv := NewInventory(4)
	corn := stackableItem(t, "corn", 10)
	if !inv.AddItem(corn, 7) {
		t.Fatalf("add failed")
	}
	if !inv.AddItem(corn, 8) {
		t.Fatalf("add failed")
	}
	if got := inv.Quantity("corn"); got != 15 {
		t.Fatalf("expected quantity 15, got %d", got)
	}
	// 7+3 tops up slot 0, remaining 5 opens slot 1.
	if inv.Slots[0].Quantity != 10 || inv.Slots[1].Quantity != 5 {
		t.Fatalf("unexpected slot layout: %d, %d", inv.Slots[0].Quantity, inv.Slots[1].Quantity)
	}
	if inv.OccupiedSlots() != 2 {
		t.Fatalf("expected 2 occupied slots, got %d", inv.OccupiedSlots())
	}
}

func TestAddItemPartialApplicationOnOverflow(t *testing.T) {
	inv := NewInventory(2)
	corn := stackableItem(t, "corn", 10)
	if ok := inv.AddItem(corn, 25); ok {
		t.Fatalf("expected overflow to report failure")
	}
	// Both slots filled to the cap; the remainder is lost, not rolled back.
	if got := inv.Quantity("corn"); got != 20 {
		t.Fatalf("expected 20 applied despite failure, got %d", got)
	}
}

func TestAddItemIntoFullInventory(t *testing.T) {
	inv := NewInventory(2)
	hoe, err := NewItem("hoe", "Hoe", "", TagTool, 1)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	axe, err := NewItem("axe", "Axe", "", TagTool, 1)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	if !inv.AddItem(hoe, 1) || !inv.AddItem(axe, 1) {
		t.Fatalf("seed adds failed")
	}
	corn := stackableItem(t, "corn", 10)
	if ok := inv.AddItem(corn, 1); ok {
		t.Fatalf("expected failure on full inventory")
	}
	if got := inv.Quantity("corn"); got != 0 {
		t.Fatalf("expected no corn added, got %d", got)
	}
	if inv.OccupiedSlots() != 2 {
		t.Fatalf("occupied slot count must not change")
	}
}

func TestRemoveItemSpansSlots(t *testing.T) {
	inv := NewInventory(4)
	corn := stackableItem(t, "corn", 10)
	inv.AddItem(corn, 10)
	inv.AddItem(corn, 5)
	if !inv.RemoveItem("corn", 12) {
		t.Fatalf("expected removal across slots to succeed")
	}
	if got := inv.Quantity("corn"); got != 3 {
		t.Fatalf("expected 3 left, got %d", got)
	}
	if inv.Slots[0].Quantity != 0 || inv.Slots[0].Item != nil {
		t.Fatalf("drained slot must be emptied")
	}
}

func TestRemoveItemShortfall(t *testing.T) {
	inv := NewInventory(2)
	corn := stackableItem(t, "corn", 10)
	inv.AddItem(corn, 4)
	if ok := inv.RemoveItem("corn", 6); ok {
		t.Fatalf("expected shortfall to report failure")
	}
	if got := inv.Quantity("corn"); got != 0 {
		t.Fatalf("shortfall still removes what was found, got %d", got)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	inv := NewInventory(4)
	corn := stackableItem(t, "corn", 99)
	before := inv.OccupiedSlots()
	if !inv.AddItem(corn, 12) {
		t.Fatalf("add failed")
	}
	if !inv.RemoveItem("corn", 12) {
		t.Fatalf("remove failed")
	}
	if inv.OccupiedSlots() != before {
		t.Fatalf("round trip must restore occupied slot count")
	}
	if inv.HasItem("corn") {
		t.Fatalf("expected no corn left")
	}
}

func TestQuantityAggregatesAcrossSlots(t *testing.T) {
	inv := NewInventory(5)
	corn := stackableItem(t, "corn", 3)
	inv.AddItem(corn, 8)
	if got := inv.Quantity("corn"); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if !inv.HasItem("corn") || inv.HasItem("wheat") {
		t.Fatalf("hasItem mismatch")
	}
}
