package staticcatalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"farmstead/internal/domain/farm"
)

const itemsYAML = `items:
  - id: corn
    name: Corn
    description: A golden ear of corn.
    tags: [stackable, sellable, food]
    max_stack: 99
  - id: hoe
    name: Rusty Hoe
    tags: [tool]
`

const cropsYAML = `crops:
  - id: corn
    name: Corn
    days_to_grow: 4
    days_to_wilt: 2
    harvest_yield: 3
    harvest_item: corn
`

const toolsYAML = `tools:
  - id: hoe
    name: Rusty Hoe
    durability: 50
`

const statesYAML = `states:
  - id: normal
    type: normal
    can_plow: true
    next_states: [plowed]
  - id: plowed
    type: plowed
    can_water: true
    can_plant: true
  - id: plowed_alt
    type: plowed
    can_water: true
`

func writeCatalogDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	defaults := map[string]string{
		"items.yaml":       itemsYAML,
		"crops.yaml":       cropsYAML,
		"tools.yaml":       toolsYAML,
		"tile_states.yaml": statesYAML,
	}
	for name, content := range files {
		defaults[name] = content
	}
	for name, content := range defaults {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_ParsesAllFiles(t *testing.T) {
	catalog, err := Load(writeCatalogDir(t, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	item, ok := catalog.Items().Get("corn")
	if !ok {
		t.Fatalf("corn item missing")
	}
	if !item.Tags.Has(farm.TagStackable) || !item.Tags.Has(farm.TagFood) {
		t.Fatalf("unexpected tags: %b", item.Tags)
	}
	if item.MaxStack != 99 {
		t.Fatalf("unexpected max stack: %d", item.MaxStack)
	}

	// Omitted max_stack falls back to the default.
	hoe, ok := catalog.Items().Get("hoe")
	if !ok {
		t.Fatalf("hoe item missing")
	}
	if hoe.MaxStack != farm.DefaultMaxStack {
		t.Fatalf("expected default max stack, got %d", hoe.MaxStack)
	}

	crop, ok := catalog.Crops().Get("corn")
	if !ok {
		t.Fatalf("corn crop missing")
	}
	if crop.DaysToGrow != 4 || crop.HarvestItemID != "corn" {
		t.Fatalf("unexpected crop: %+v", crop)
	}

	tool, ok := catalog.Tools().Get("hoe")
	if !ok || tool.Durability != 50 {
		t.Fatalf("unexpected tool: %+v", tool)
	}
}

func TestLoad_ItemsAreSharedCropsAreCopies(t *testing.T) {
	catalog, err := Load(writeCatalogDir(t, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	item1, _ := catalog.Items().Get("corn")
	item2, _ := catalog.Items().Get("corn")
	if item1 != item2 {
		t.Fatalf("expected shared item pointer")
	}

	crop1, _ := catalog.Crops().Get("corn")
	crop2, _ := catalog.Crops().Get("corn")
	if crop1 == crop2 {
		t.Fatalf("expected fresh crop instances")
	}
	crop1.DaysPlanted = 3
	if crop2.DaysPlanted != 0 {
		t.Fatalf("crop instances must not alias")
	}
}

func TestLoad_ResolvesStateLinks(t *testing.T) {
	catalog, err := Load(writeCatalogDir(t, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	normal, ok := catalog.TileStates().ByID("normal")
	if !ok {
		t.Fatalf("normal state missing")
	}
	if len(normal.Next) != 1 || normal.Next[0].ID != "plowed" {
		t.Fatalf("unexpected links: %+v", normal.Next)
	}
}

func TestLoad_ByTypeReturnsFirstInAuthoringOrder(t *testing.T) {
	catalog, err := Load(writeCatalogDir(t, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	state, ok := catalog.TileStates().ByType(farm.StatePlowed)
	if !ok {
		t.Fatalf("plowed state missing")
	}
	if state.ID != "plowed" {
		t.Fatalf("expected first authored plowed state, got %q", state.ID)
	}
}

func TestLoad_RejectsUnknownLink(t *testing.T) {
	dir := writeCatalogDir(t, map[string]string{
		"tile_states.yaml": `states:
  - id: normal
    type: normal
    next_states: [missing]
`,
	})
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown state") {
		t.Fatalf("expected unknown-state error, got %v", err)
	}
}

func TestLoad_RejectsDuplicateStateID(t *testing.T) {
	dir := writeCatalogDir(t, map[string]string{
		"tile_states.yaml": `states:
  - id: normal
    type: normal
  - id: normal
    type: plowed
`,
	})
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate-state error, got %v", err)
	}
}

func TestLoad_RejectsUnknownTag(t *testing.T) {
	dir := writeCatalogDir(t, map[string]string{
		"items.yaml": `items:
  - id: corn
    name: Corn
    tags: [shiny]
`,
	})
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown item tag") {
		t.Fatalf("expected unknown-tag error, got %v", err)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for empty catalog dir")
	}
}
