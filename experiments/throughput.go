package experiments

import (
	"context"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

// RunThroughputExperiment searches the opening position once per configuration
// and depth, recording how much work each configuration does. No games are
// played, so the move records use the depth as their step.
func RunThroughputExperiment(ctx context.Context, opts Options, maxLimit int) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Algorithm: searcher.MinimaxAlgorithm},
		{ID: 2, Algorithm: searcher.MinimaxAlgorithm, Caching: true},
		{ID: 3, Algorithm: searcher.AlphaBetaAlgorithm},
		{ID: 4, Algorithm: searcher.AlphaBetaAlgorithm, Caching: true},
		{ID: 5, Algorithm: searcher.AlphaBetaAlgorithm, Ordering: true},
		{ID: 6, Algorithm: searcher.AlphaBetaAlgorithm, Caching: true, Ordering: true},
	}
	board := game.StartingBoard(opts.BoardSize)

	log.Info().Msg("starting throughput experiment...")

	moveRecords := []metrics.MoveRecord{}
	for _, config := range configs {
		for limit := 1; limit <= maxLimit; limit++ {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			// A fresh searcher per run keeps every cache cold
			s := searcher.NewSearcher(searcher.WithMetrics())
			result, err := agent.SelectMove(s, board, game.PlayerOne, agent.Settings{
				Limit:     limit,
				Algorithm: agent.Algorithm(config.Algorithm),
				Caching:   config.Caching,
				Ordering:  config.Ordering,
			})
			if err != nil {
				return "", err
			}

			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game: config.ID,
				MoveMetric: metrics.MoveMetric{
					Step:         limit,
					Player:       int(game.PlayerOne),
					SearchMetric: result.Metric,
				},
			})
			log.Info().Msgf("agent %d at depth %d visited %d nodes in %s", config.ID, limit, result.Metric.Nodes, result.Metric.Duration)
		}
	}

	log.Info().Msg("completed throughput experiment")
	return writeRecords(opts.OutputDir, "throughput", configs, nil, moveRecords)
}
