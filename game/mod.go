package game

// Player is the sign of a side: First is +1 and Second is -1. None is the
// neutral value returned by Position.Result while no side has won.
type Player int8

const (
	Second Player = -1
	None   Player = 0
	First  Player = 1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

// Move is a game specific move value. Dynamic values must be comparable, the
// searcher compares moves with ==.
type Move any

// Key canonically identifies a logical position. Two positions with equal keys
// must have the same optimal value and move.
type Key string

// Position should be immutable - operations on Position always return a new copy
type Position interface {
	// Player returns the side to move
	Player() Player
	// LegalMoves is never empty for a non-terminal position; a side that
	// cannot move gets a pass move instead
	LegalMoves() []Move
	// Play panics when move is not one of LegalMoves
	Play(move Move) Position
	// Result is the winner, or None while the game runs or when it is drawn
	Result() Player
	Terminal() bool
	Key() Key
}

// Utility scores a position; positive values favour First regardless of the
// side to move.
type Utility func(Position) float64

// Ordering returns the legal moves of a position in the order they should be
// searched.
type Ordering func(Position) []Move

// ResultUtility scores won positions +1/-1 and everything else 0.
func ResultUtility(p Position) float64 {
	return float64(p.Result())
}

// IsLegal reports whether move is one of the legal moves of p.
func IsLegal(p Position, move Move) bool {
	for _, m := range p.LegalMoves() {
		if m == move {
			return true
		}
	}
	return false
}
