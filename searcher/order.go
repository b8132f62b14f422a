package searcher

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"othello/game"
)

// orderMoves sorts the moves of mover by the exact utility, from perspective,
// of the board each one leads to. Descending puts the best move for a
// maximizing node first, ascending the best move for a minimizing node. The
// sort is stable so equal moves keep their generation order. The cache is not
// consulted.
func orderMoves(rules game.Rules, moves []game.Move, board game.Board, mover, perspective game.Player, descending bool) []game.Move {
	type scored struct {
		move    game.Move
		utility Utility
	}

	candidates := make([]scored, len(moves))
	for i, move := range moves {
		child := rules.Play(board, mover, move)
		candidates[i] = scored{move: move, utility: ExactUtility(rules, child, perspective)}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.utility == b.utility:
			return 0
		case (a.utility < b.utility) != descending:
			return -1
		default:
			return 1
		}
	})

	return lo.Map(candidates, func(c scored, _ int) game.Move {
		return c.move
	})
}
