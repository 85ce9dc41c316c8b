package model

import "time"

type FarmTile struct {
	X       int32  `gorm:"column:x;primaryKey"`
	Y       int32  `gorm:"column:y;primaryKey"`
	StateID string `gorm:"column:state_id"`
	Watered bool   `gorm:"column:watered"`

	HasCrop          bool   `gorm:"column:has_crop"`
	CropID           string `gorm:"column:crop_id"`
	CropName         string `gorm:"column:crop_name"`
	CropStage        string `gorm:"column:crop_stage"`
	DaysToGrow       int32  `gorm:"column:days_to_grow"`
	DaysToWilt       int32  `gorm:"column:days_to_wilt"`
	HarvestYield     int32  `gorm:"column:harvest_yield"`
	HarvestItemID    string `gorm:"column:harvest_item_id"`
	DaysPlanted      int32  `gorm:"column:days_planted"`
	DaysSinceWatered int32  `gorm:"column:days_since_watered"`
	WateredToday     bool   `gorm:"column:watered_today"`
	TimesWatered     int32  `gorm:"column:times_watered"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (FarmTile) TableName() string { return "farm_tiles" }

type PlayerInventory struct {
	PlayerID  string    `gorm:"column:player_id;primaryKey"`
	SlotCount int32     `gorm:"column:slot_count"`
	Slots     []byte    `gorm:"column:slots"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PlayerInventory) TableName() string { return "player_inventories" }

type Player struct {
	PlayerID  string `gorm:"column:player_id;primaryKey"`
	X         int32  `gorm:"column:x"`
	Y         int32  `gorm:"column:y"`
	Energy    int32  `gorm:"column:energy"`
	EnergyMax int32  `gorm:"column:energy_max"`
	Money     int64  `gorm:"column:money"`
}

func (Player) TableName() string { return "players" }

type DomainEvent struct {
	ID         string    `gorm:"column:id;primaryKey"`
	PlayerID   string    `gorm:"column:player_id;index"`
	Kind       string    `gorm:"column:kind"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
	Payload    []byte    `gorm:"column:payload"`
}

func (DomainEvent) TableName() string { return "domain_events" }
