package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("alphabeta", 3, true, false)
	c.AddNode()
	c.AddNode()
	c.AddLeafEvaluation()
	c.AddTerminalEvaluation()
	c.AddCutoff()
	c.AddCacheHit()
	c.AddCacheStore()
	c.AddCacheStore()

	metric := c.Complete()
	require.Equal(t, "alphabeta", metric.Algorithm)
	require.Equal(t, 3, metric.Limit)
	require.True(t, metric.Caching)
	require.False(t, metric.Ordering)
	require.Equal(t, 2, metric.Nodes)
	require.Equal(t, 1, metric.LeafEvaluations)
	require.Equal(t, 1, metric.TerminalEvaluations)
	require.Equal(t, 1, metric.Cutoffs)
	require.Equal(t, 1, metric.CacheHits)
	require.Equal(t, 2, metric.CacheStores)

	c.Start("minimax", 1, false, false)
	require.Zero(t, c.Complete().Nodes, "Start should reset the counters")

	dummy := NewDummyCollector()
	dummy.Start("minimax", 1, false, false)
	dummy.AddNode()
	require.Equal(t, SearchMetric{}, dummy.Complete())
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "pruning")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, "pruning", filepath.Base(filepath.Dir(w.Dir())))

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Algorithm: "minimax", Limit: 3},
		{ID: 2, Algorithm: "alphabeta", Limit: 3, Caching: true, Keying: "board"},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "algorithm", "limit", "caching", "ordering", "keying"},
		{"1", "minimax", "3", "false", "false", ""},
		{"2", "alphabeta", "3", "true", "false", "board"},
	}, rows)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID:     1,
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			StartingPlayer: 1,
			Winner:         2,
			ScoreOne:       20,
			ScoreTwo:       44,
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     60,
			Passes:         2,
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "2", "1", "2", "20", "44", "60", "2", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:   1,
			Player: 1,
			SearchMetric: SearchMetric{
				Algorithm: "alphabeta",
				Limit:     3,
				Ordering:  true,
				Duration:  time.Millisecond,
				Nodes:     50,
				Cutoffs:   7,
			},
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "1", "alphabeta", "3", "false", "true", "1ms", "50", "0", "0", "7", "0", "0"}, rows[1])
}
