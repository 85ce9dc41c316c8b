package farm

// Player owns its inventory 1:1; the inventory itself lives behind the
// inventory repository keyed by the same id.
type Player struct {
	ID       PlayerID
	Position Position
	Energy   Energy
	Money    Money
}

func NewPlayer(id PlayerID, pos Position, energy Energy, money Money) Player {
	return Player{ID: id, Position: pos, Energy: energy, Money: money}
}
