package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

// Options control how many games are played and where records go.
type Options struct {
	BoardSize   int
	Games       int // Per match up
	Parallelism int
	OutputDir   string
	Seed        uint64
}

// RunPruningExperiment plays minimax against alpha-beta at the same depth.
// Both should be equally strong; alpha-beta should visit fewer nodes.
func RunPruningExperiment(ctx context.Context, opts Options, limit int) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Algorithm: searcher.MinimaxAlgorithm, Limit: limit},
		{ID: 2, Algorithm: searcher.AlphaBetaAlgorithm, Limit: limit},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}
	return runExperiment(ctx, opts, "pruning", configs, matchUps)
}

// RunCachingExperiment compares both cache keyings against an uncached baseline.
func RunCachingExperiment(ctx context.Context, opts Options, limit int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: searcher.AlphaBetaAlgorithm, Limit: limit}
	cachingConfigs := []metrics.AgentConfig{
		{ID: 1, Algorithm: searcher.AlphaBetaAlgorithm, Limit: limit, Caching: true, Keying: searcher.KeyContext.String()},
		{ID: 2, Algorithm: searcher.AlphaBetaAlgorithm, Limit: limit, Caching: true, Keying: searcher.KeyBoard.String()},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range cachingConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, opts, "caching", append(cachingConfigs, baseline), matchUps)
}

func RunOrderingExperiment(ctx context.Context, opts Options, limit int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: searcher.AlphaBetaAlgorithm, Limit: limit}
	ordered := metrics.AgentConfig{ID: 1, Algorithm: searcher.AlphaBetaAlgorithm, Limit: limit, Ordering: true}
	matchUps := [][]metrics.AgentConfig{
		{baseline, ordered},
		{ordered, baseline},
	}
	return runExperiment(ctx, opts, "ordering", []metrics.AgentConfig{baseline, ordered}, matchUps)
}

// RunBaselineExperiment plays a search agent against the random agent.
func RunBaselineExperiment(ctx context.Context, opts Options, settings agent.Settings) (string, error) {
	random := metrics.AgentConfig{ID: 0, Algorithm: "random"}
	search := metrics.AgentConfig{
		ID:        1,
		Algorithm: string(settings.Algorithm),
		Limit:     settings.Limit,
		Caching:   settings.Caching,
		Ordering:  settings.Ordering,
	}
	matchUps := [][]metrics.AgentConfig{
		{random, search},
		{search, random},
	}
	return runExperiment(ctx, opts, "baseline", []metrics.AgentConfig{random, search}, matchUps)
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// runExperiment plays opts.Games games per match up, opts.Parallelism at a
// time, and returns the directory holding the records. Every game builds its
// own agents, so no searcher or cache is shared between goroutines.
func runExperiment(ctx context.Context, opts Options, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	results := make([]gameResult, len(matchUps)*opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for mi, matchup := range matchUps {
		config1, config2 := matchup[0], matchup[1]
		log.Info().Msgf("scheduling matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < opts.Games; i++ {
			mi, i := mi, i
			id := mi*opts.Games + i + 1
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				winner, gameMetric, moveMetrics, err := runGame(opts, uint64(id), config1, config2)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}

				result := gameResult{record: metrics.GameRecord{
					ID:         id,
					Agent1:     config1.ID,
					Agent2:     config2.ID,
					GameMetric: gameMetric,
				}}
				for _, mm := range moveMetrics {
					result.moves = append(result.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
				}
				results[id-1] = result

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("%s experiment failed: %w", name, err)
	}
	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		moveRecords = append(moveRecords, result.moves...)
	}
	return writeRecords(opts.OutputDir, name, configs, gameRecords, moveRecords)
}

func writeRecords(dir, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if games != nil {
		if err := writer.WriteGameRecords(games); err != nil {
			return "", err
		}
		log.Info().Msg("stored game records")
	}

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(opts Options, seed uint64, config1, config2 metrics.AgentConfig) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	rules := game.NewStandardRules()
	agents := []agent.Agent{
		createAgent(rules, config1, opts.Seed+seed),
		createAgent(rules, config2, opts.Seed+seed+1),
	}
	e := engine.LocalEngine(agents, game.StartingBoard(opts.BoardSize), rules)
	return e.Run()
}

func createAgent(rules game.Rules, config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Algorithm == "random" {
		return agent.NewRandomAgent(rules, seed)
	}

	options := []searcher.Option{searcher.WithRules(rules), searcher.WithMetrics()}
	if config.Keying != "" {
		keying, err := searcher.ParseCacheKeying(config.Keying)
		if err != nil {
			panic(err)
		}
		options = append(options, searcher.WithCacheKeying(keying))
	}

	settings := agent.Settings{
		Limit:     config.Limit,
		Algorithm: agent.Algorithm(config.Algorithm),
		Caching:   config.Caching,
		Ordering:  config.Ordering,
	}
	return agent.NewSearchAgent(settings, options...)
}
