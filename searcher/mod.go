package searcher

import (
	"adversary/game"
	"time"
)

// Search limits

const MinDepth = 2 // Shallowest iteration, always completed
const DefaultMaxDepth = 10
const DefaultDuration = 10 * time.Second

type Searcher interface {
	FindNextMove(pos game.Position) game.Move
}
