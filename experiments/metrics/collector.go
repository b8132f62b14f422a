package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm           string
	Limit               int
	Caching             bool
	Ordering            bool
	Duration            time.Duration
	Nodes               int
	LeafEvaluations     int // Heuristic evaluations at the depth cutoff
	TerminalEvaluations int
	Cutoffs             int
	CacheHits           int
	CacheStores         int
}

type MoveMetric struct {
	Step   int
	Player int // Player wire value
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player wire value
	Winner         int // Player wire value, 0 for a draw
	ScoreOne       int
	ScoreTwo       int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(algorithm string, limit int, caching, ordering bool)
	AddNode()
	AddLeafEvaluation()
	AddTerminalEvaluation()
	AddCutoff()
	AddCacheHit()
	AddCacheStore()
	Complete() SearchMetric
}

type collector struct {
	algorithm           string
	limit               int
	caching             bool
	ordering            bool
	startTime           time.Time
	nodes               atomic.Int64
	leafEvaluations     atomic.Int64
	terminalEvaluations atomic.Int64
	cutoffs             atomic.Int64
	cacheHits           atomic.Int64
	cacheStores         atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, limit int, caching, ordering bool) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.limit = limit
	m.caching = caching
	m.ordering = ordering
	m.nodes.Store(0)
	m.leafEvaluations.Store(0)
	m.terminalEvaluations.Store(0)
	m.cutoffs.Store(0)
	m.cacheHits.Store(0)
	m.cacheStores.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeafEvaluation() {
	m.leafEvaluations.Add(1)
}

func (m *collector) AddTerminalEvaluation() {
	m.terminalEvaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCacheStore() {
	m.cacheStores.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:           m.algorithm,
		Limit:               m.limit,
		Caching:             m.caching,
		Ordering:            m.ordering,
		Duration:            time.Since(m.startTime),
		Nodes:               int(m.nodes.Load()),
		LeafEvaluations:     int(m.leafEvaluations.Load()),
		TerminalEvaluations: int(m.terminalEvaluations.Load()),
		Cutoffs:             int(m.cutoffs.Load()),
		CacheHits:           int(m.cacheHits.Load()),
		CacheStores:         int(m.cacheStores.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, limit int, caching, ordering bool) {}
func (m *dummyCollector) AddNode()                                                {}
func (m *dummyCollector) AddLeafEvaluation()                                      {}
func (m *dummyCollector) AddTerminalEvaluation()                                  {}
func (m *dummyCollector) AddCutoff()                                              {}
func (m *dummyCollector) AddCacheHit()                                            {}
func (m *dummyCollector) AddCacheStore()                                          {}
func (m *dummyCollector) Complete() SearchMetric                                  { return SearchMetric{} }
