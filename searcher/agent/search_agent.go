package agent

import (
	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
	settings Settings
}

// NewSearchAgent returns an agent that plays the move found by a minimax or
// alpha-beta search. The agent owns its searcher and therefore its cache.
func NewSearchAgent(settings Settings, options ...searcher.Option) Agent {
	s := searcher.NewSearcher(options...)
	logSettings(settings, s.CacheKeying())
	return searchAgent{searcher: s, settings: settings}
}

func (a searchAgent) FindMove(board game.Board, color game.Player) (game.Move, metrics.SearchMetric, error) {
	result, err := SelectMove(a.searcher, board, color, a.settings)
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}

	log.Debug().
		Str("player", color.String()).
		Stringer("move", result.Move).
		Int("utility", int(result.Utility)).
		Uint64("board", board.Hash()).
		Int("nodes", result.Metric.Nodes).
		Msg("selected move")
	return result.Move, result.Metric, nil
}
