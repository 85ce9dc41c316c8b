package farming

import "farmstead/internal/domain/farm"

type ActionRequest struct {
	PlayerID string
	X        int
	Y        int
}

type PlantRequest struct {
	PlayerID string
	X        int
	Y        int
	CropID   string
}

type AdvanceRequest struct {
	Days int
}

type TileRequest struct {
	X int
	Y int
}

type CropView struct {
	ID               farm.CropID      `json:"id"`
	Name             string           `json:"name"`
	Stage            farm.GrowthStage `json:"stage"`
	DaysPlanted      int              `json:"days_planted"`
	DaysSinceWatered int              `json:"days_since_watered"`
	WateredToday     bool             `json:"watered_today"`
	TimesWatered     int              `json:"times_watered"`
}

type TileView struct {
	Position farm.Position `json:"position"`
	StateID  string        `json:"state_id"`
	Watered  bool          `json:"watered"`
	Crop     *CropView     `json:"crop,omitempty"`
}

type ActionResponse struct {
	Tile   TileView     `json:"tile"`
	Events []farm.Event `json:"events,omitempty"`
}

type AdvanceResponse struct {
	Days         int `json:"days"`
	TilesUpdated int `json:"tiles_updated"`
}

func toTileView(tile *farm.FarmTile) TileView {
	view := TileView{
		Position: tile.Position,
		StateID:  tile.StateID,
		Watered:  tile.Watered,
	}
	if tile.Crop != nil {
		view.Crop = &CropView{
			ID:               tile.Crop.ID,
			Name:             tile.Crop.Name,
			Stage:            tile.Crop.Stage,
			DaysPlanted:      tile.Crop.DaysPlanted,
			DaysSinceWatered: tile.Crop.DaysSinceWatered,
			WateredToday:     tile.Crop.WateredToday,
			TimesWatered:     tile.Crop.TimesWatered,
		}
	}
	return view
}
