package staticcatalog

import (
	"fmt"
	"os"
	"path/filepath"

	"farmstead/internal/domain/farm"

	"gopkg.in/yaml.v3"
)

// Catalog loads the reference data set from YAML files in one
// directory: items.yaml, crops.yaml, tools.yaml, tile_states.yaml.
// Items are cached and handed out shared; crop and tool templates are
// copied per lookup because instances mutate.
type Catalog struct {
	items      map[farm.ItemID]*farm.Item
	crops      map[farm.CropID]farm.Crop
	tools      map[farm.ToolID]farm.Tool
	statesByID map[string]*farm.TileState
	stateOrder []*farm.TileState
}

type itemsFile struct {
	Items []itemRecord `yaml:"items"`
}

type itemRecord struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	MaxStack    int      `yaml:"max_stack"`
}

type cropsFile struct {
	Crops []cropRecord `yaml:"crops"`
}

type cropRecord struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	DaysToGrow   int    `yaml:"days_to_grow"`
	DaysToWilt   int    `yaml:"days_to_wilt"`
	HarvestYield int    `yaml:"harvest_yield"`
	HarvestItem  string `yaml:"harvest_item"`
}

type toolsFile struct {
	Tools []toolRecord `yaml:"tools"`
}

type toolRecord struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Durability int    `yaml:"durability"`
}

type statesFile struct {
	States []stateRecord `yaml:"states"`
}

type stateRecord struct {
	ID              string   `yaml:"id"`
	Type            string   `yaml:"type"`
	CanPlow         bool     `yaml:"can_plow"`
	CanPlant        bool     `yaml:"can_plant"`
	CanWater        bool     `yaml:"can_water"`
	CanHarvest      bool     `yaml:"can_harvest"`
	AllowCropGrowth bool     `yaml:"allow_crop_growth"`
	NextStates      []string `yaml:"next_states"`
}

var tagNames = map[string]farm.ItemTag{
	"stackable":  farm.TagStackable,
	"seed":       farm.TagSeed,
	"consumable": farm.TagConsumable,
	"quest_item": farm.TagQuestItem,
	"tool":       farm.TagTool,
	"material":   farm.TagMaterial,
	"food":       farm.TagFood,
	"sellable":   farm.TagSellable,
	"buyable":    farm.TagBuyable,
	"giftable":   farm.TagGiftable,
	"craftable":  farm.TagCraftable,
	"edible":     farm.TagEdible,
	"drinkable":  farm.TagDrinkable,
	"usable":     farm.TagUsable,
	"rare":       farm.TagRare,
	"resource":   farm.TagResource,
}

func Load(dir string) (*Catalog, error) {
	c := &Catalog{
		items:      map[farm.ItemID]*farm.Item{},
		crops:      map[farm.CropID]farm.Crop{},
		tools:      map[farm.ToolID]farm.Tool{},
		statesByID: map[string]*farm.TileState{},
	}
	if err := c.loadItems(filepath.Join(dir, "items.yaml")); err != nil {
		return nil, err
	}
	if err := c.loadCrops(filepath.Join(dir, "crops.yaml")); err != nil {
		return nil, err
	}
	if err := c.loadTools(filepath.Join(dir, "tools.yaml")); err != nil {
		return nil, err
	}
	if err := c.loadStates(filepath.Join(dir, "tile_states.yaml")); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) loadItems(path string) error {
	var file itemsFile
	if err := readYAML(path, &file); err != nil {
		return err
	}
	for _, rec := range file.Items {
		tags, err := tagsFromNames(rec.Tags)
		if err != nil {
			return fmt.Errorf("item %s: %w", rec.ID, err)
		}
		item, err := farm.NewItem(farm.ItemID(rec.ID), rec.Name, rec.Description, tags, rec.MaxStack)
		if err != nil {
			return fmt.Errorf("item %s: %w", rec.ID, err)
		}
		c.items[item.ID] = item
	}
	return nil
}

func (c *Catalog) loadCrops(path string) error {
	var file cropsFile
	if err := readYAML(path, &file); err != nil {
		return err
	}
	for _, rec := range file.Crops {
		crop, err := farm.NewCrop(farm.CropID(rec.ID), rec.Name, rec.DaysToGrow, rec.DaysToWilt, rec.HarvestYield, farm.ItemID(rec.HarvestItem))
		if err != nil {
			return fmt.Errorf("crop %s: %w", rec.ID, err)
		}
		c.crops[crop.ID] = *crop
	}
	return nil
}

func (c *Catalog) loadTools(path string) error {
	var file toolsFile
	if err := readYAML(path, &file); err != nil {
		return err
	}
	for _, rec := range file.Tools {
		if rec.ID == "" || rec.Name == "" {
			return fmt.Errorf("tool %q: id and name are required", rec.ID)
		}
		c.tools[farm.ToolID(rec.ID)] = farm.Tool{
			ID:         farm.ToolID(rec.ID),
			Name:       rec.Name,
			Durability: rec.Durability,
		}
	}
	return nil
}

func (c *Catalog) loadStates(path string) error {
	var file statesFile
	if err := readYAML(path, &file); err != nil {
		return err
	}
	for _, rec := range file.States {
		if rec.ID == "" {
			return fmt.Errorf("tile state with empty id in %s", path)
		}
		if _, dup := c.statesByID[rec.ID]; dup {
			return fmt.Errorf("duplicate tile state %q", rec.ID)
		}
		state := &farm.TileState{
			ID:              rec.ID,
			Type:            farm.TileStateType(rec.Type),
			CanPlow:         rec.CanPlow,
			CanPlant:        rec.CanPlant,
			CanWater:        rec.CanWater,
			CanHarvest:      rec.CanHarvest,
			AllowCropGrowth: rec.AllowCropGrowth,
		}
		c.statesByID[state.ID] = state
		c.stateOrder = append(c.stateOrder, state)
	}
	// Second pass: resolve transition links, keeping authoring order.
	for _, rec := range file.States {
		state := c.statesByID[rec.ID]
		for _, nextID := range rec.NextStates {
			next, ok := c.statesByID[nextID]
			if !ok {
				return fmt.Errorf("tile state %q links to unknown state %q", rec.ID, nextID)
			}
			state.Next = append(state.Next, next)
		}
	}
	return nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func tagsFromNames(names []string) (farm.ItemTag, error) {
	var tags farm.ItemTag
	for _, name := range names {
		tag, ok := tagNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown item tag %q", name)
		}
		tags |= tag
	}
	return tags, nil
}

// Items returns the item catalog view; entries are shared immutable
// templates.
func (c *Catalog) Items() Items { return Items{c: c} }

// Crops returns the crop catalog view; every Get yields a fresh
// instance.
func (c *Catalog) Crops() Crops { return Crops{c: c} }

func (c *Catalog) Tools() Tools { return Tools{c: c} }

func (c *Catalog) TileStates() TileStates { return TileStates{c: c} }

type Items struct {
	c *Catalog
}

func (v Items) Get(id farm.ItemID) (*farm.Item, bool) {
	item, ok := v.c.items[id]
	return item, ok
}

func (v Items) Has(id farm.ItemID) bool {
	_, ok := v.c.items[id]
	return ok
}

type Crops struct {
	c *Catalog
}

func (v Crops) Get(id farm.CropID) (*farm.Crop, bool) {
	template, ok := v.c.crops[id]
	if !ok {
		return nil, false
	}
	crop := template
	return &crop, true
}

func (v Crops) Has(id farm.CropID) bool {
	_, ok := v.c.crops[id]
	return ok
}

type Tools struct {
	c *Catalog
}

func (v Tools) Get(id farm.ToolID) (*farm.Tool, bool) {
	template, ok := v.c.tools[id]
	if !ok {
		return nil, false
	}
	tool := template
	return &tool, true
}

func (v Tools) Has(id farm.ToolID) bool {
	_, ok := v.c.tools[id]
	return ok
}

type TileStates struct {
	c *Catalog
}

func (v TileStates) ByID(id string) (*farm.TileState, bool) {
	state, ok := v.c.statesByID[id]
	return state, ok
}

// ByType scans the full state list in authoring order and returns the
// first match.
func (v TileStates) ByType(stateType farm.TileStateType) (*farm.TileState, bool) {
	for _, state := range v.c.stateOrder {
		if state.Type == stateType {
			return state, true
		}
	}
	return nil, false
}
