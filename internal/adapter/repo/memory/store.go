package memory

import (
	"context"
	"sync"

	"farmstead/internal/domain/farm"
)

// Store backs the in-memory repositories. The tx manager holds the
// mutex for the duration of a unit of work and marks the ctx; repo
// calls outside a tx take the mutex themselves, so direct reads from
// concurrent handlers stay safe.
type Store struct {
	mu          sync.Mutex
	slotCount   int
	tiles       map[farm.Position]*farm.FarmTile
	tileOrder   []farm.Position
	inventories map[farm.PlayerID]*farm.Inventory
	players     map[farm.PlayerID]farm.Player
	events      map[farm.PlayerID][]farm.Event
}

func NewStore(slotCount int) *Store {
	return &Store{
		slotCount:   slotCount,
		tiles:       make(map[farm.Position]*farm.FarmTile),
		inventories: make(map[farm.PlayerID]*farm.Inventory),
		players:     make(map[farm.PlayerID]farm.Player),
		events:      make(map[farm.PlayerID][]farm.Event),
	}
}

// acquire takes the store lock unless the ctx already runs inside a
// tx, where the tx manager holds it. The returned func releases what
// was taken.
func (s *Store) acquire(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) SeedPlayer(p farm.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}

func (s *Store) SeedInventory(playerID farm.PlayerID, inv *farm.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventories[playerID] = inv
}
