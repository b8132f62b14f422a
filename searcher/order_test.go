package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func TestOrderMoves(t *testing.T) {
	rules := game.NewStandardRules()
	// (0,0) flips two light disks, (2,4) flips one
	board := mustBoard(t, [][]int{
		{0, 2, 2, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 2, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	moves := rules.LegalMoves(board, game.PlayerOne)
	require.Equal(t, []game.Move{{Row: 0, Col: 0}, {Row: 2, Col: 4}}, moves)

	t.Run("descending for a maximizing node", func(t *testing.T) {
		ordered := orderMoves(rules, []game.Move{{Row: 2, Col: 4}, {Row: 0, Col: 0}}, board, game.PlayerOne, game.PlayerOne, true)

		require.Equal(t, []game.Move{{Row: 0, Col: 0}, {Row: 2, Col: 4}}, ordered)
	})

	t.Run("ascending for a minimizing node", func(t *testing.T) {
		ordered := orderMoves(rules, moves, board, game.PlayerOne, game.PlayerOne, false)

		require.Equal(t, []game.Move{{Row: 2, Col: 4}, {Row: 0, Col: 0}}, ordered)
	})

	t.Run("utility taken from the given perspective", func(t *testing.T) {
		ordered := orderMoves(rules, moves, board, game.PlayerOne, game.PlayerTwo, true)

		require.Equal(t, []game.Move{{Row: 2, Col: 4}, {Row: 0, Col: 0}}, ordered)
	})

	t.Run("ties keep generation order", func(t *testing.T) {
		opening := rules.LegalMoves(game.StartingBoard(8), game.PlayerOne)

		descending := orderMoves(rules, opening, game.StartingBoard(8), game.PlayerOne, game.PlayerOne, true)
		ascending := orderMoves(rules, opening, game.StartingBoard(8), game.PlayerOne, game.PlayerOne, false)

		require.Equal(t, opening, descending)
		require.Equal(t, opening, ascending)
	})

	t.Run("input left untouched", func(t *testing.T) {
		input := []game.Move{{Row: 2, Col: 4}, {Row: 0, Col: 0}}
		orderMoves(rules, input, board, game.PlayerOne, game.PlayerOne, true)

		require.Equal(t, []game.Move{{Row: 2, Col: 4}, {Row: 0, Col: 0}}, input)
	})
}
