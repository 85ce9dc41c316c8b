package ports

import "farmstead/internal/domain/farm"

// ItemCatalog hands out shared immutable templates; items are safe to
// cache.
type ItemCatalog interface {
	Get(id farm.ItemID) (*farm.Item, bool)
	Has(id farm.ItemID) bool
}

// CropCatalog hands out fresh instances: crops carry per-planting
// mutable growth state and must never alias a catalog entry.
type CropCatalog interface {
	Get(id farm.CropID) (*farm.Crop, bool)
	Has(id farm.CropID) bool
}

// ToolCatalog hands out fresh instances for the same reason.
type ToolCatalog interface {
	Get(id farm.ToolID) (*farm.Tool, bool)
	Has(id farm.ToolID) bool
}

type TileStateCatalog interface {
	ByID(id string) (*farm.TileState, bool)
	ByType(stateType farm.TileStateType) (*farm.TileState, bool)
}
