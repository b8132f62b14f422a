package searcher

import (
	"errors"
	"math"

	"othello/experiments/metrics"
	"othello/game"
)

// Utility is a signed score, positive favoring the maximizing player.
type Utility int

const (
	MinUtility Utility = math.MinInt
	MaxUtility Utility = math.MaxInt
)

// ErrNoLegalMove is returned when the player to move has no legal moves; the
// caller should treat it as a pass.
var ErrNoLegalMove = errors.New("no legal move")

const (
	MinimaxAlgorithm   = "minimax"
	AlphaBetaAlgorithm = "alphabeta"
)

type Option func(s *Searcher)

// Result is the outcome of a top-level search.
type Result struct {
	Move    game.Move
	Utility Utility
	Metric  metrics.SearchMetric
}

// Searcher runs minimax and alpha-beta searches. It owns its transposition
// cache, so a Searcher must only be used by one goroutine at a time.
type Searcher struct {
	rules    game.Rules
	leaf     Evaluate
	terminal Evaluate
	keying   CacheKeying
	cache    *TranspositionCache
	metrics  metrics.Collector

	// Called after every alpha or beta update, for tests
	onBound func(node int, maximizing bool, bound Utility)
}

func WithRules(rules game.Rules) Option {
	return func(s *Searcher) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithLeafEvaluation sets the evaluator used when the depth limit is reached.
func WithLeafEvaluation(evaluate Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.leaf = evaluate
		}
	}
}

// WithTerminalEvaluation sets the evaluator used when the side to move has no legal moves.
func WithTerminalEvaluation(evaluate Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.terminal = evaluate
		}
	}
}

func WithCacheKeying(keying CacheKeying) Option {
	return func(s *Searcher) {
		s.keying = keying
	}
}

// WithCache makes the searcher use an existing cache instead of a fresh one.
func WithCache(cache *TranspositionCache) Option {
	return func(s *Searcher) {
		if cache != nil {
			s.cache = cache
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		rules:    game.NewStandardRules(),
		leaf:     Heuristic,
		terminal: ExactUtility,
		keying:   KeyContext,
		cache:    NewTranspositionCache(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Rules() game.Rules {
	return s.rules
}

func (s *Searcher) Cache() *TranspositionCache {
	return s.cache
}

func (s *Searcher) CacheKeying() CacheKeying {
	return s.keying
}

// search holds the parameters fixed for the whole of one top-level call.
type search struct {
	*Searcher
	color    game.Player
	caching  bool
	ordering bool
	nodes    int
}

func (s *Searcher) newSearch(color game.Player, caching, ordering bool) *search {
	return &search{Searcher: s, color: color, caching: caching, ordering: ordering}
}

// lookup consults the cache, and only when caching is on.
func (sr *search) lookup(board game.Board, toMove game.Player, limit int) (Utility, bool) {
	if !sr.caching {
		return 0, false
	}
	utility, ok := sr.cache.Lookup(newCacheKey(sr.keying, board, toMove, sr.color, limit))
	if ok {
		sr.metrics.AddCacheHit()
	}
	return utility, ok
}

func (sr *search) store(board game.Board, toMove game.Player, limit int, utility Utility) {
	if !sr.caching {
		return
	}
	sr.cache.Store(newCacheKey(sr.keying, board, toMove, sr.color, limit), utility)
	sr.metrics.AddCacheStore()
}

// evaluateLeaf returns the utility of a node that is not expanded, either
// because the side to move has no legal moves or because the depth limit is
// reached. ok is false when the node must be expanded.
func (sr *search) evaluateLeaf(board game.Board, moves []game.Move, limit int) (Utility, bool) {
	if len(moves) == 0 {
		sr.metrics.AddTerminalEvaluation()
		return sr.terminal(sr.rules, board, sr.color), true
	}
	if limit == 0 {
		sr.metrics.AddLeafEvaluation()
		return sr.leaf(sr.rules, board, sr.color), true
	}
	return 0, false
}

func (sr *search) nextNode() int {
	sr.nodes++
	sr.metrics.AddNode()
	return sr.nodes
}

func (sr *search) bound(node int, maximizing bool, bound Utility) {
	if sr.onBound != nil {
		sr.onBound(node, maximizing, bound)
	}
}

// decrement lowers a depth limit by one ply; negative limits never expire.
func decrement(limit int) int {
	if limit < 0 {
		return limit
	}
	return limit - 1
}

// rootChildLimit is the limit handed to the children of the root. A zero limit
// still evaluates the one-ply children, with the leaf evaluator.
func rootChildLimit(limit int) int {
	if limit > 0 {
		return limit - 1
	}
	return limit
}
