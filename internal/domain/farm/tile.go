package farm

import "errors"

// DefaultTileStateID is the state id new tiles start in.
const DefaultTileStateID = "normal"

var (
	ErrActionNotAllowed = errors.New("action not allowed in current tile state")
	ErrNoNextState      = errors.New("no next tile state")
	ErrNilCrop          = errors.New("crop must not be nil")
	ErrNoCrop           = errors.New("tile has no crop")
)

// FarmTile tracks one coordinate's state id, watered flag, and the at
// most one crop it owns. The tile never resolves state ids itself; the
// orchestrator injects resolved TileState records.
type FarmTile struct {
	Position Position
	StateID  string
	Crop     *Crop
	Watered  bool
}

func NewFarmTile(pos Position) *FarmTile {
	return &FarmTile{Position: pos, StateID: DefaultTileStateID}
}

func (t *FarmTile) Planted() bool {
	return t.Crop != nil
}

func (t *FarmTile) CanPlow(state *TileState) bool {
	return state != nil && state.CanPlow && !t.Planted()
}

func (t *FarmTile) CanWater(state *TileState) bool {
	return state != nil && state.CanWater && !t.Watered
}

func (t *FarmTile) CanPlant(state *TileState) bool {
	return state != nil && state.CanPlant && !t.Planted()
}

// CanHarvest requires a mature crop. The state gate only applies when a
// state is supplied.
func (t *FarmTile) CanHarvest(state *TileState) bool {
	if !t.Planted() || !t.Crop.Mature() {
		return false
	}
	if state != nil && !state.CanHarvest {
		return false
	}
	return true
}

func (t *FarmTile) Plow(current, next *TileState) error {
	if !t.CanPlow(current) {
		return ErrActionNotAllowed
	}
	if next == nil {
		return ErrNoNextState
	}
	t.StateID = next.ID
	return nil
}

func (t *FarmTile) Water(current, next *TileState) error {
	if !t.CanWater(current) {
		return ErrActionNotAllowed
	}
	if next == nil {
		return ErrNoNextState
	}
	t.Watered = true
	if t.Crop != nil {
		t.Crop.Water()
	}
	t.StateID = next.ID
	return nil
}

// Plant hands ownership of the crop to the tile.
func (t *FarmTile) Plant(crop *Crop, current, next *TileState) error {
	if crop == nil {
		return ErrNilCrop
	}
	if !t.CanPlant(current) {
		return ErrActionNotAllowed
	}
	if next == nil {
		return ErrNoNextState
	}
	t.Crop = crop
	t.StateID = next.ID
	return nil
}

// Harvest clears the crop and watered flag on success. Moving the state
// id back to plowed is the orchestrator's job.
func (t *FarmTile) Harvest() (ItemID, int, error) {
	if t.Crop == nil {
		return "", 0, ErrNoCrop
	}
	itemID, quantity, err := t.Crop.Harvest()
	if err != nil {
		return "", 0, err
	}
	t.Crop = nil
	t.Watered = false
	return itemID, quantity, nil
}

// UpdateCrop runs the daily tick. A crop that wilts is dropped from the
// tile. The watered flag resets every day whether or not a crop is
// present.
func (t *FarmTile) UpdateCrop(daysPassed int) {
	if daysPassed <= 0 {
		return
	}
	if t.Crop != nil {
		t.Crop.UpdateGrowth(daysPassed)
		if t.Crop.Wilted() {
			t.Crop = nil
		}
	}
	t.Watered = false
}
