package agent

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Algorithm string

const (
	Minimax   Algorithm = searcher.MinimaxAlgorithm
	AlphaBeta Algorithm = searcher.AlphaBetaAlgorithm
)

func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case Minimax, AlphaBeta:
		return Algorithm(name), nil
	}
	return "", fmt.Errorf("unknown algorithm %q: want minimax or alphabeta", name)
}

// Settings are the per-move search parameters.
type Settings struct {
	Limit     int // Negative for no depth limit
	Algorithm Algorithm
	Caching   bool
	Ordering  bool // Alpha-beta only
}

type Agent interface {
	// FindMove returns a move for color and the metrics (if collected) of the search behind it
	FindMove(board game.Board, color game.Player) (game.Move, metrics.SearchMetric, error)
}

// SelectMove runs the search chosen by settings. It returns searcher.ErrNoLegalMove
// when color has to pass.
func SelectMove(s *searcher.Searcher, board game.Board, color game.Player, settings Settings) (searcher.Result, error) {
	switch settings.Algorithm {
	case Minimax:
		return s.SelectMoveMinimax(board, color, settings.Limit, settings.Caching)
	case AlphaBeta:
		return s.SelectMoveAlphaBeta(board, color, settings.Limit, settings.Caching, settings.Ordering)
	}
	return searcher.Result{Move: game.NoMove}, fmt.Errorf("unknown algorithm %q", settings.Algorithm)
}

func logSettings(settings Settings, keying searcher.CacheKeying) {
	log.Info().
		Str("algorithm", string(settings.Algorithm)).
		Bool("caching", settings.Caching).
		Str("keying", keying.String()).
		Bool("ordering", settings.Ordering).
		Int("limit", settings.Limit).
		Msg("search agent configured")

	if settings.Limit < 0 {
		log.Info().Msg("depth limit is off")
	}
	if settings.Algorithm == Minimax && settings.Ordering {
		log.Warn().Msg("node ordering has no impact on minimax")
	}
}
