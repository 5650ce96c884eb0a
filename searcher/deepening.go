package searcher

import (
	"adversary/game"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(n *Negamax)

var _ Searcher = (*Negamax)(nil)

// Negamax is an iterative deepening alpha-beta searcher. A Negamax is not safe
// for concurrent use; give every goroutine its own.
type Negamax struct {
	utility     game.Utility
	ordering    game.Ordering
	maxDepth    int
	duration    time.Duration
	transpose   bool
	withMetrics bool
	rng         *rand.Rand
	lastMetric  SearchMetric
}

type Result struct {
	Move   game.Move
	Score  float64 // From the point of view of the side to move at the root
	Depth  int
	Metric SearchMetric
}

func WithDuration(duration time.Duration) Option {
	return func(n *Negamax) {
		if duration > 0 {
			n.duration = duration
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(n *Negamax) {
		if depth >= MinDepth {
			n.maxDepth = depth
		}
	}
}

func WithUtility(utility game.Utility) Option {
	return func(n *Negamax) {
		if utility != nil {
			n.utility = utility
		}
	}
}

func WithOrdering(ordering game.Ordering) Option {
	return func(n *Negamax) {
		if ordering != nil {
			n.ordering = ordering
		}
	}
}

// WithSeed makes the default random ordering reproducible.
func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

func WithoutTranspositions() Option {
	return func(n *Negamax) {
		n.transpose = false
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.withMetrics = true
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		utility:   game.ResultUtility,
		maxDepth:  DefaultMaxDepth,
		duration:  DefaultDuration,
		transpose: true,
	}
	for _, option := range options {
		option(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64)))
	}
	if n.ordering == nil {
		n.ordering = shuffled(n.rng)
	}
	return n
}

func (n *Negamax) FindNextMove(pos game.Position) game.Move {
	return n.Search(pos).Move
}

// LastMetric returns the metrics of the latest Search, empty unless the
// searcher was built WithMetrics.
func (n *Negamax) LastMetric() SearchMetric {
	return n.lastMetric
}

func (n *Negamax) MaxDepth() int {
	return n.maxDepth
}

func (n *Negamax) Duration() time.Duration {
	return n.duration
}

func (n *Negamax) newSearch() *search {
	s := &search{
		utility:  n.utility,
		ordering: n.ordering,
		metrics:  NewDummyCollector(),
	}
	if n.transpose {
		s.table = newTable()
	}
	if n.withMetrics {
		s.metrics = NewCollector()
	}
	return s
}

// SearchDepth runs a single alpha-beta search of the given depth over the full
// window with a fresh table. Terminal positions are scored without a move.
func (n *Negamax) SearchDepth(pos game.Position, depth int) (float64, game.Move) {
	s := n.newSearch()
	return s.negamax(pos, depth, math.Inf(-1), math.Inf(1), pos.Player())
}

// Search deepens from MinDepth until the depth ceiling is reached or the next
// iteration is not expected to fit in what is left of the time budget. The
// first iteration always completes, so a move is always returned.
//
// Searching a terminal position is a caller error and panics.
func (n *Negamax) Search(root game.Position) Result {
	if root.Terminal() {
		panic("cannot search a terminal position")
	}
	branching := len(root.LegalMoves())
	if branching == 0 {
		panic("non-terminal position has no legal moves")
	}

	s := n.newSearch()
	s.metrics.Start()
	start := time.Now()

	var result Result
	for depth := MinDepth; depth <= n.maxDepth; depth++ {
		iterationStart := time.Now()
		score, move := s.negamax(root, depth, math.Inf(-1), math.Inf(1), root.Player())
		elapsed := time.Since(iterationStart)
		s.metrics.CompleteDepth(depth, elapsed)
		result = Result{Move: move, Score: score, Depth: depth}

		log.Debug().
			Int("depth", depth).
			Float64("score", score).
			Interface("move", move).
			Dur("elapsed", elapsed).
			Msg("deepening-iteratively")

		remaining := n.duration - time.Since(start)
		if estimateNext(branching, elapsed) > remaining {
			log.Debug().Int("depth", depth).Dur("remaining", remaining).Msg("stopping-before-next-depth")
			break
		}
	}

	result.Metric = s.metrics.Complete(s.table.stats())
	n.lastMetric = result.Metric
	return result
}

// estimateNext predicts the cost of the next iteration as the last one scaled
// by the root branching factor.
func estimateNext(branching int, last time.Duration) time.Duration {
	return time.Duration(branching) * last
}
