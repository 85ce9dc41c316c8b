package farm

import (
	"errors"
	"fmt"
)

type GrowthStage string

const (
	StageSeed    GrowthStage = "seed"
	StageSprout  GrowthStage = "sprout"
	StageGrowing GrowthStage = "growing"
	StageMature  GrowthStage = "mature"
	StageWilted  GrowthStage = "wilted"
)

var (
	ErrCropNotMature = errors.New("crop is not mature")
	ErrInvalidCrop   = errors.New("invalid crop definition")
)

// Crop is one planting. Template fields are fixed at construction;
// the rest is growth state driven by the daily tick.
type Crop struct {
	ID            CropID
	Name          string
	DaysToGrow    int
	DaysToWilt    int
	HarvestYield  int
	HarvestItemID ItemID

	Stage            GrowthStage
	DaysPlanted      int
	DaysSinceWatered int
	WateredToday     bool
	TimesWatered     int
}

func NewCrop(id CropID, name string, daysToGrow, daysToWilt, harvestYield int, harvestItemID ItemID) (*Crop, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: crop id", ErrBlankID)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: crop %s", ErrBlankName, id)
	}
	if daysToGrow <= 0 || daysToWilt <= 0 || harvestYield <= 0 {
		return nil, fmt.Errorf("%w: crop %s", ErrInvalidCrop, id)
	}
	return &Crop{
		ID:            id,
		Name:          name,
		DaysToGrow:    daysToGrow,
		DaysToWilt:    daysToWilt,
		HarvestYield:  harvestYield,
		HarvestItemID: harvestItemID,
		Stage:         StageSeed,
	}, nil
}

// UpdateGrowth advances the crop by daysPassed simulated days. The
// watered-today flag is consumed here: watering counts for exactly one
// tick. A crop that went unwatered keeps its stage frozen, and wilts
// once the dry streak reaches DaysToWilt. Wilted is absorbing.
func (c *Crop) UpdateGrowth(daysPassed int) {
	if daysPassed <= 0 || c.Stage == StageWilted {
		return
	}
	c.DaysPlanted += daysPassed
	if c.WateredToday {
		c.DaysSinceWatered = 0
		c.WateredToday = false
	} else {
		c.DaysSinceWatered += daysPassed
	}
	if c.DaysSinceWatered >= c.DaysToWilt {
		c.Stage = StageWilted
		return
	}
	if c.DaysSinceWatered == 0 {
		c.Stage = stageForProgress(c.DaysPlanted, c.DaysToGrow)
	}
}

// Water marks the crop watered for the current day. Repeat calls on the
// same day keep incrementing TimesWatered; the day flag itself is
// idempotent.
func (c *Crop) Water() {
	if c.Stage == StageWilted {
		return
	}
	c.WateredToday = true
	c.DaysSinceWatered = 0
	c.TimesWatered++
}

// Harvest yields the configured item and quantity. The caller discards
// the crop afterwards; no post-harvest stage is defined.
func (c *Crop) Harvest() (ItemID, int, error) {
	if c.Stage != StageMature {
		return "", 0, fmt.Errorf("%w: stage %s", ErrCropNotMature, c.Stage)
	}
	return c.HarvestItemID, c.HarvestYield, nil
}

func (c *Crop) Mature() bool {
	return c.Stage == StageMature
}

func (c *Crop) Wilted() bool {
	return c.Stage == StageWilted
}

// Ties go to the higher stage.
func stageForProgress(daysPlanted, daysToGrow int) GrowthStage {
	progress := float64(daysPlanted)
	grow := float64(daysToGrow)
	switch {
	case progress >= grow:
		return StageMature
	case progress >= grow*0.75:
		return StageGrowing
	case progress >= grow*0.25:
		return StageSprout
	default:
		return StageSeed
	}
}
