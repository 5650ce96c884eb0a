package searcher

import (
	"adversary/game"
	"fmt"
	"hash/fnv"
)

type mockMove int

// mockState is a synthetic game tree: every node has two or three children,
// chosen by hashing its path, and a pseudo random utility.
type mockState struct {
	path   string
	player game.Player
	plies  int
	height int
	seed   uint64
}

func newMockState(height int, seed uint64) mockState {
	return mockState{player: game.First, height: height, seed: seed}
}

func (m mockState) hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%s", m.seed, m.path)
	return h.Sum64()
}

func (m mockState) Player() game.Player {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	if m.Terminal() {
		return nil
	}
	n := 2 + int(m.hash()%2)
	moves := make([]game.Move, n)
	for i := range moves {
		moves[i] = mockMove(i)
	}
	return moves
}

func (m mockState) Play(move game.Move) game.Position {
	if !game.IsLegal(m, move) {
		panic(fmt.Sprintf("illegal move %v", move))
	}
	return mockState{
		path:   fmt.Sprintf("%s%d", m.path, move.(mockMove)),
		player: m.player.Opponent(),
		plies:  m.plies + 1,
		height: m.height,
		seed:   m.seed,
	}
}

func (m mockState) Result() game.Player {
	return game.None
}

func (m mockState) Terminal() bool {
	return m.plies >= m.height
}

func (m mockState) Key() game.Key {
	return game.Key(m.path)
}

func mockUtility(p game.Position) float64 {
	return float64(int(p.(mockState).hash()%21) - 10)
}

// minimax is a plain full-window negamax without pruning or transpositions.
func minimax(pos game.Position, depth int, sign game.Player, utility game.Utility, ordering game.Ordering) (float64, game.Move) {
	if depth == 0 || pos.Terminal() {
		return float64(sign) * utility(pos), nil
	}
	var bestMove game.Move
	bestScore := 0.0
	for i, move := range ordering(pos) {
		score, _ := minimax(pos.Play(move), depth-1, -sign, utility, ordering)
		score = -score
		if i == 0 || score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestScore, bestMove
}
