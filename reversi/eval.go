package reversi

import (
	"adversary/game"
	"slices"
)

// squareWeights rewards corners and edges and is symmetric for both sides.
var squareWeights = [Size * Size]float64{
	9, 1, 3, 3, 3, 3, 1, 9,
	1, 1, 1, 1, 1, 1, 1, 1,
	3, 1, 1, 1, 1, 1, 1, 3,
	3, 1, 1, 1, 1, 1, 1, 3,
	3, 1, 1, 1, 1, 1, 1, 3,
	3, 1, 1, 1, 1, 1, 1, 3,
	1, 1, 1, 1, 1, 1, 1, 1,
	9, 1, 3, 3, 3, 3, 1, 9,
}

// Discs on the board from which the hybrid utility switches to disc counting
const endgameDiscs = 48

// Terminal positions are worth more than any heuristic score
const WinScore = 1000.0

func asPosition(p game.Position) Position {
	pos, ok := p.(Position)
	if !ok {
		panic("unexpected position type")
	}
	return pos
}

// DiscUtility is the plain disc difference.
func DiscUtility(p game.Position) float64 {
	pos := asPosition(p)
	return float64(pos.Count(game.First) - pos.Count(game.Second))
}

// StaticUtility weighs every disc by its square.
func StaticUtility(p game.Position) float64 {
	pos := asPosition(p)
	score := 0.0
	for sq := Square(0); sq < Size*Size; sq++ {
		score += float64(pos.Owner(sq)) * squareWeights[sq]
	}
	return score
}

// CornerUtility is the corner balance in [-1, 1], 0 when no corner is taken.
func CornerUtility(p game.Position) float64 {
	pos := asPosition(p)
	first := float64(count(pos.discs[0] & corners))
	second := float64(count(pos.discs[1] & corners))
	if first+second == 0 {
		return 0
	}
	return (first - second) / (first + second)
}

// HybridUtility plays positionally until the board fills up, then counts
// discs.
func HybridUtility(p game.Position) float64 {
	pos := asPosition(p)
	first, second := pos.Count(game.First), pos.Count(game.Second)
	if first+second < endgameDiscs {
		return StaticUtility(p)
	}
	return float64(first-second) / float64(first+second)
}

// Decisive wraps a heuristic so finished games score ±WinScore, or 0 when
// drawn.
func Decisive(utility game.Utility) game.Utility {
	return func(p game.Position) float64 {
		if p.Terminal() {
			return float64(p.Result()) * WinScore
		}
		return utility(p)
	}
}

// SquareOrdering searches heavily weighted squares first. Ties keep the
// board order so the ordering is deterministic.
func SquareOrdering(p game.Position) []game.Move {
	moves := slices.Clone(p.LegalMoves())
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		wa, wb := weight(a), weight(b)
		switch {
		case wa > wb:
			return -1
		case wa < wb:
			return 1
		default:
			return 0
		}
	})
	return moves
}

func weight(m game.Move) float64 {
	sq := m.(Square)
	if sq == Pass {
		return 0
	}
	return squareWeights[sq]
}

// Utilities by name, as used in configuration files.
var Utilities = map[string]game.Utility{
	"disc":   DiscUtility,
	"static": StaticUtility,
	"corner": CornerUtility,
	"hybrid": HybridUtility,
}
