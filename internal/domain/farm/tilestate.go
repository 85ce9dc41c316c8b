package farm

type TileStateType string

const (
	StateNormal        TileStateType = "normal"
	StatePlowed        TileStateType = "plowed"
	StateWatered       TileStateType = "watered"
	StateSeeded        TileStateType = "seeded"
	StateSeededWatered TileStateType = "seeded_watered"
	StateGrowing       TileStateType = "growing"
	StateMature        TileStateType = "mature"
)

type TileAction string

const (
	ActionPlow    TileAction = "plow"
	ActionWater   TileAction = "water"
	ActionPlant   TileAction = "plant"
	ActionHarvest TileAction = "harvest"
)

// TileState is a read-only catalog record. Next holds the authored
// transition candidates in authoring order.
type TileState struct {
	ID              string
	Type            TileStateType
	CanPlow         bool
	CanPlant        bool
	CanWater        bool
	CanHarvest      bool
	AllowCropGrowth bool
	Next            []*TileState
}

func (s *TileState) Allows(action TileAction) bool {
	switch action {
	case ActionPlow:
		return s.CanPlow
	case ActionWater:
		return s.CanWater
	case ActionPlant:
		return s.CanPlant
	case ActionHarvest:
		return s.CanHarvest
	default:
		return false
	}
}

// NextForAction returns the first authored candidate whose capability
// flag matches the action, or nil. Multiple candidates may match; the
// authoring order decides. Callers fall back to the catalog's
// type-keyed lookup when this returns nil.
func (s *TileState) NextForAction(action TileAction) *TileState {
	for _, next := range s.Next {
		if next == nil {
			continue
		}
		if next.Allows(action) {
			return next
		}
	}
	return nil
}
