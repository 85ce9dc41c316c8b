package farm

// InventorySlot holds one item stack. A slot with no item or zero
// quantity counts as empty.
type InventorySlot struct {
	Item     *Item
	Quantity int
}

func (s InventorySlot) Empty() bool {
	return s.Item == nil || s.Quantity == 0
}

const DefaultSlotCount = 20

// Inventory is a fixed-length ordered sequence of slots.
type Inventory struct {
	Slots []InventorySlot
}

func NewInventory(slotCount int) *Inventory {
	if slotCount <= 0 {
		slotCount = DefaultSlotCount
	}
	return &Inventory{Slots: make([]InventorySlot, slotCount)}
}

// AddItem tops up existing stacks of the same item first, then fills
// empty slots. Returns false when the inventory ran out of room with a
// remainder left over; additions applied up to that point stay applied.
// Callers must treat false as "some items may have been added".
func (inv *Inventory) AddItem(item *Item, quantity int) bool {
	if item == nil || quantity <= 0 {
		return false
	}
	remaining := quantity
	if item.Stackable() {
		for i := range inv.Slots {
			slot := &inv.Slots[i]
			if slot.Empty() || slot.Item.ID != item.ID {
				continue
			}
			space := item.MaxStack - slot.Quantity
			if space <= 0 {
				continue
			}
			if space > remaining {
				space = remaining
			}
			slot.Quantity += space
			remaining -= space
			if remaining == 0 {
				return true
			}
		}
	}
	for i := range inv.Slots {
		slot := &inv.Slots[i]
		if !slot.Empty() {
			continue
		}
		add := remaining
		if add > item.MaxStack {
			add = item.MaxStack
		}
		slot.Item = item
		slot.Quantity = add
		remaining -= add
		if remaining == 0 {
			return true
		}
	}
	return false
}

// RemoveItem drains matching slots in order. Returns whether the full
// requested quantity was removed; a shortfall still removes what was
// found.
func (inv *Inventory) RemoveItem(itemID ItemID, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	remaining := quantity
	for i := range inv.Slots {
		slot := &inv.Slots[i]
		if slot.Empty() || slot.Item.ID != itemID {
			continue
		}
		take := remaining
		if take > slot.Quantity {
			take = slot.Quantity
		}
		slot.Quantity -= take
		remaining -= take
		if slot.Quantity == 0 {
			slot.Item = nil
		}
		if remaining == 0 {
			return true
		}
	}
	return false
}

func (inv *Inventory) HasItem(itemID ItemID) bool {
	return inv.Quantity(itemID) > 0
}

func (inv *Inventory) Quantity(itemID ItemID) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot.Empty() || slot.Item.ID != itemID {
			continue
		}
		total += slot.Quantity
	}
	return total
}

func (inv *Inventory) OccupiedSlots() int {
	count := 0
	for _, slot := range inv.Slots {
		if !slot.Empty() {
			count++
		}
	}
	return count
}
