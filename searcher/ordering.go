package searcher

import (
	"adversary/game"
	"slices"

	"golang.org/x/exp/rand"
)

// shuffled orders moves uniformly at random so equally good moves vary
// between games and no fixed order is a worst case for pruning.
func shuffled(rng *rand.Rand) game.Ordering {
	return func(pos game.Position) []game.Move {
		moves := slices.Clone(pos.LegalMoves())
		rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
		return moves
	}
}

// InOrder searches moves in the order the position lists them.
func InOrder(pos game.Position) []game.Move {
	return pos.LegalMoves()
}
