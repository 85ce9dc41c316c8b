package farm

import "testing"

func TestNextForActionFirstMatchWins(t *testing.T) {
	a := &TileState{ID: "a", CanWater: true}
	b := &TileState{ID: "b", CanWater: true, CanPlant: true}
	c := &TileState{ID: "c", CanPlant: true}
	current := &TileState{ID: "current", Next: []*TileState{a, b, c}}

	if got := current.NextForAction(ActionWater); got != a {
		t.Fatalf("expected first watering candidate %q, got %v", a.ID, got)
	}
	if got := current.NextForAction(ActionPlant); got != b {
		t.Fatalf("expected first planting candidate %q, got %v", b.ID, got)
	}
	if got := current.NextForAction(ActionPlow); got != nil {
		t.Fatalf("expected nil when no candidate matches, got %q", got.ID)
	}
}

func TestNextForActionSkipsNilLinks(t *testing.T) {
	target := &TileState{ID: "target", CanPlow: true}
	current := &TileState{ID: "current", Next: []*TileState{nil, target}}
	if got := current.NextForAction(ActionPlow); got != target {
		t.Fatalf("expected %q, got %v", target.ID, got)
	}
}

func TestAllows(t *testing.T) {
	s := &TileState{CanPlow: true, CanHarvest: true}
	if !s.Allows(ActionPlow) || !s.Allows(ActionHarvest) {
		t.Fatalf("expected plow and harvest allowed")
	}
	if s.Allows(ActionWater) || s.Allows(ActionPlant) {
		t.Fatalf("expected water and plant disallowed")
	}
	if s.Allows(TileAction("till")) {
		t.Fatalf("unknown actions must not be allowed")
	}
}
