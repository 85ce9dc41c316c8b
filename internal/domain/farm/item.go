package farm

import (
	"errors"
	"fmt"
)

var ErrBlankName = errors.New("name must not be blank")

// ItemTag is an open bitset of item capabilities.
type ItemTag uint32

const (
	TagStackable ItemTag = 1 << iota
	TagSeed
	TagConsumable
	TagQuestItem
	TagTool
	TagMaterial
	TagFood
	TagSellable
	TagBuyable
	TagGiftable
	TagCraftable
	TagEdible
	TagDrinkable
	TagUsable
	TagRare
	TagResource
)

func (t ItemTag) Has(flag ItemTag) bool {
	return t&flag != 0
}

const DefaultMaxStack = 99

// Item is a catalog template, immutable once constructed.
type Item struct {
	ID          ItemID
	Name        string
	Description string
	Tags        ItemTag
	MaxStack    int
}

func NewItem(id ItemID, name, description string, tags ItemTag, maxStack int) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: item id", ErrBlankID)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: item %s", ErrBlankName, id)
	}
	if maxStack <= 0 {
		maxStack = DefaultMaxStack
	}
	return &Item{
		ID:          id,
		Name:        name,
		Description: description,
		Tags:        tags,
		MaxStack:    maxStack,
	}, nil
}

func (i *Item) Stackable() bool {
	return i.Tags.Has(TagStackable)
}

// Tool is a catalog template for equippable tools. Instances carry
// per-use durability, so the catalog hands out fresh copies.
type Tool struct {
	ID         ToolID
	Name       string
	Durability int
}
