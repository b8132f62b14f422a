package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMove(t *testing.T) {
	t.Run("printing the chosen move", func(t *testing.T) {
		in := strings.NewReader(`[[0,0,0,0],[0,2,1,0],[0,1,2,0],[0,0,0,0]]`)
		var out bytes.Buffer

		err := runMove([]string{"-limit", "2", "-algorithm", "minimax"}, in, &out)
		require.NoError(t, err)
		require.Contains(t, []string{"0 1\n", "1 0\n", "2 3\n", "3 2\n"}, out.String())
	})

	t.Run("passing", func(t *testing.T) {
		in := strings.NewReader(`[[1,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,2]]`)
		var out bytes.Buffer

		require.NoError(t, runMove([]string{"-color", "2"}, in, &out))
		require.Equal(t, "pass\n", out.String())
	})

	t.Run("rejecting a malformed board", func(t *testing.T) {
		in := strings.NewReader(`[[0,0,0],[0,0]]`)

		require.Error(t, runMove(nil, in, &bytes.Buffer{}))
	})
}

func TestRunExperimentNeedsLimit(t *testing.T) {
	require.Error(t, runExperiment(nil))
	require.Error(t, runExperiment([]string{"pruning"}), "Unlimited depth is too slow for self-play")
	require.Error(t, runExperiment([]string{"tournament", "-limit", "1"}))
}
