package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("building a well-formed board", func(t *testing.T) {
		board, err := NewBoard([][]int{
			{0, 1, 0},
			{2, 0, 0},
			{0, 0, 1},
		})

		require.NoError(t, err)
		require.Equal(t, 3, board.Size())
		require.Equal(t, Dark, board.At(0, 1))
		require.Equal(t, Light, board.At(1, 0))
		require.Equal(t, Empty, board.At(1, 1))
		dark, light := board.Count()
		require.Equal(t, 2, dark)
		require.Equal(t, 1, light)
	})

	t.Run("rejecting malformed boards", func(t *testing.T) {
		cases := map[string][][]int{
			"too small":   {{0}},
			"not square":  {{0, 0}, {0, 0, 0}},
			"ragged rows": {{0, 0, 0}, {0, 0}, {0, 0, 0}},
			"bad cell":    {{0, 3}, {0, 0}},
			"negative":    {{0, -1}, {0, 0}},
		}
		for name, rows := range cases {
			_, err := NewBoard(rows)
			require.ErrorIs(t, err, ErrMalformedBoard, name)
		}
	})
}

func TestStartingBoard(t *testing.T) {
	board := StartingBoard(4)

	require.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 2, 1, 0},
		{0, 1, 2, 0},
		{0, 0, 0, 0},
	}, board.Rows())
	require.Equal(t, "....\n.OX.\n.XO.\n....\n", board.String())
	require.Equal(t, [4]Move{{0, 0}, {0, 3}, {3, 0}, {3, 3}}, board.Corners())

	require.Panics(t, func() { StartingBoard(5) }, "Odd sizes have no centre square")
}

func TestBoardIdentity(t *testing.T) {
	rows := StartingBoard(8).Rows()
	built, err := NewBoard(rows)
	require.NoError(t, err)

	require.Equal(t, StartingBoard(8), built, "Boards with the same cells should be equal")
	require.Equal(t, StartingBoard(8).Hash(), built.Hash())

	seen := map[Board]int{StartingBoard(8): 1}
	require.Equal(t, 1, seen[built], "Boards should work as map keys")

	rules := NewStandardRules()
	moved := rules.Play(built, PlayerOne, Move{Row: 2, Col: 3})
	require.NotEqual(t, built, moved)
	require.NotEqual(t, built.Hash(), moved.Hash())
}

func TestBoardJSON(t *testing.T) {
	t.Run("encoding as a list of rows", func(t *testing.T) {
		data, err := json.Marshal(StartingBoard(4))

		require.NoError(t, err)
		require.JSONEq(t, `[[0,0,0,0],[0,2,1,0],[0,1,2,0],[0,0,0,0]]`, string(data))
	})

	t.Run("decoding a list of rows", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`[[0,0,0,0],[0,2,1,0],[0,1,2,0],[0,0,0,0]]`), &board)

		require.NoError(t, err)
		require.Equal(t, StartingBoard(4), board)
	})

	t.Run("decoding a malformed board", func(t *testing.T) {
		var board Board

		require.ErrorIs(t, json.Unmarshal([]byte(`[[0,0],[0]]`), &board), ErrMalformedBoard)
		require.ErrorIs(t, json.Unmarshal([]byte(`"board"`), &board), ErrMalformedBoard)
		require.True(t, board.IsZero(), "Board should be untouched after a failed decode")
	})
}

func TestMoveJSON(t *testing.T) {
	data, err := json.Marshal(Move{Row: 2, Col: 3})
	require.NoError(t, err)
	require.Equal(t, `[2,3]`, string(data))

	var move Move
	require.NoError(t, json.Unmarshal([]byte(`[5,4]`), &move))
	require.Equal(t, Move{Row: 5, Col: 4}, move)
	require.Equal(t, "5 4", move.String())
}

func TestPlayer(t *testing.T) {
	require.Equal(t, PlayerTwo, PlayerOne.Opponent())
	require.Equal(t, PlayerOne, PlayerTwo.Opponent())
	require.Equal(t, PlayerOne, PlayerOne.Opponent().Opponent())
	require.Equal(t, Dark, PlayerOne.Cell())
	require.Equal(t, Light, PlayerTwo.Cell())

	player, err := ParsePlayer(2)
	require.NoError(t, err)
	require.Equal(t, PlayerTwo, player)

	_, err = ParsePlayer(3)
	require.Error(t, err)
}
