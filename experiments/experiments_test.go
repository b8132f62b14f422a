package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"othello/searcher/agent"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func lineCount(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	count := 0
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	return count
}

func TestExperiments(t *testing.T) {
	opts := Options{BoardSize: 4, Games: 2, Parallelism: 2, Seed: 1}

	t.Run("pruning", func(t *testing.T) {
		opts := opts
		opts.OutputDir = t.TempDir()

		dir, err := RunPruningExperiment(context.Background(), opts, 2)
		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "agent_configs.csv"))
		require.Equal(t, 1+2*opts.Games, lineCount(t, filepath.Join(dir, "game_records.csv")), "Header plus one row per game")
		require.Greater(t, lineCount(t, filepath.Join(dir, "move_records.csv")), 1)
	})

	t.Run("caching", func(t *testing.T) {
		opts := opts
		opts.OutputDir = t.TempDir()

		dir, err := RunCachingExperiment(context.Background(), opts, 2)
		require.NoError(t, err)
		require.Equal(t, 1+3, lineCount(t, filepath.Join(dir, "agent_configs.csv")))
	})

	t.Run("ordering", func(t *testing.T) {
		opts := opts
		opts.OutputDir = t.TempDir()

		_, err := RunOrderingExperiment(context.Background(), opts, 2)
		require.NoError(t, err)
	})

	t.Run("baseline", func(t *testing.T) {
		opts := opts
		opts.OutputDir = t.TempDir()

		dir, err := RunBaselineExperiment(context.Background(), opts, agent.Settings{Limit: 1, Algorithm: agent.Minimax})
		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "game_records.csv"))
	})

	t.Run("throughput", func(t *testing.T) {
		opts := opts
		opts.BoardSize = 6
		opts.OutputDir = t.TempDir()

		dir, err := RunThroughputExperiment(context.Background(), opts, 2)
		require.NoError(t, err)
		require.NoFileExists(t, filepath.Join(dir, "game_records.csv"), "No games are played")
		require.Equal(t, 1+6*2, lineCount(t, filepath.Join(dir, "move_records.csv")))
	})

	t.Run("cancelled", func(t *testing.T) {
		opts := opts
		opts.OutputDir = t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunPruningExperiment(ctx, opts, 2)
		require.ErrorIs(t, err, context.Canceled)

		_, err = RunThroughputExperiment(ctx, opts, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}
