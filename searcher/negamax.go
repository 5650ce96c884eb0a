package searcher

import (
	"adversary/game"
	"adversary/utils"
	"fmt"
	"math"
	"slices"
)

// search holds the state of one top-level call. The table is nil when
// transpositions are disabled.
type search struct {
	utility  game.Utility
	ordering game.Ordering
	table    *table
	metrics  Collector
}

// negamax returns the score of pos from the point of view of the side to move
// and the move achieving it. sign is +1 when First is to move and -1 otherwise.
func (s *search) negamax(pos game.Position, depth int, alpha, beta float64, sign game.Player) (float64, game.Move) {
	s.metrics.AddNode()
	originalAlpha, originalBeta := alpha, beta

	var hint game.Move
	key := pos.Key()
	if s.table != nil {
		if e, ok := s.table.probe(key); ok {
			hint = e.move
			if e.covers(depth) {
				switch e.bound {
				case Exact:
					return e.value, e.move
				case LowerBound:
					alpha = math.Max(alpha, e.value)
				case UpperBound:
					beta = math.Min(beta, e.value)
				}
				if alpha >= beta {
					return e.value, e.move
				}
			}
		}
	}

	if depth == 0 || pos.Terminal() {
		return float64(sign) * s.utility(pos), nil
	}

	moves := slices.Clone(s.ordering(pos))
	if len(moves) == 0 {
		panic(fmt.Sprintf("position %q is not terminal but has no legal moves", key))
	}
	if hint != nil && !utils.MoveToFront(moves, hint) {
		panic(fmt.Sprintf("transposition move %v is not among the ordered moves", hint))
	}

	bestScore := math.Inf(-1)
	bestMove := moves[0]
	for _, move := range moves {
		score, _ := s.negamax(pos.Play(move), depth-1, -beta, -alpha, -sign)
		score = -score

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}

	if s.table != nil {
		s.table.store(key, entry{
			bound: classify(bestScore, originalAlpha, originalBeta),
			depth: depth,
			value: bestScore,
			move:  bestMove,
		})
	}
	return bestScore, bestMove
}
