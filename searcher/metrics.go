package searcher

import "time"

type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Depth        int             // Deepest completed iteration
	Iterations   []time.Duration // Elapsed time per completed depth
	Nodes        int
	Cutoffs      int
	TableLookups int
	TableHits    int
	TableStores  int
	TableSize    int
}

type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	CompleteDepth(depth int, elapsed time.Duration)
	Complete(stats TableStats) SearchMetric
}

// Searches are single threaded, so the counters need no synchronisation.
type collector struct {
	startTime  time.Time
	depth      int
	iterations []time.Duration
	nodes      int
	cutoffs    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) CompleteDepth(depth int, elapsed time.Duration) {
	m.depth = depth
	m.iterations = append(m.iterations, elapsed)
}

func (m *collector) Complete(stats TableStats) SearchMetric {
	return SearchMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Depth:        m.depth,
		Iterations:   m.iterations,
		Nodes:        m.nodes,
		Cutoffs:      m.cutoffs,
		TableLookups: stats.Lookups,
		TableHits:    stats.Hits,
		TableStores:  stats.Stores,
		TableSize:    stats.Size,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                         {}
func (m *dummyCollector) AddNode()                                       {}
func (m *dummyCollector) AddCutoff()                                     {}
func (m *dummyCollector) CompleteDepth(depth int, elapsed time.Duration) {}
func (m *dummyCollector) Complete(stats TableStats) SearchMetric         { return SearchMetric{} }
