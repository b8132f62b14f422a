package searcher

import (
	"othello/game"
)

// SelectMoveAlphaBeta picks the same move as SelectMoveMinimax while pruning
// branches that cannot change the result. With ordering on, moves are tried
// best one-ply exact utility first at every node.
func (s *Searcher) SelectMoveAlphaBeta(board game.Board, color game.Player, limit int, caching, ordering bool) (Result, error) {
	moves := s.rules.LegalMoves(board, color)
	if len(moves) == 0 {
		return Result{Move: game.NoMove}, ErrNoLegalMove
	}

	s.metrics.Start(AlphaBetaAlgorithm, limit, caching, ordering)
	sr := s.newSearch(color, caching, ordering)
	node := sr.nextNode()

	if ordering {
		moves = orderMoves(s.rules, moves, board, color, color, true)
	}

	// The best utility so far is the running alpha
	best := Result{Move: game.NoMove, Utility: MinUtility}
	for _, move := range moves {
		child := s.rules.Play(board, color, move)
		_, utility := sr.alphaBetaMin(child, best.Utility, MaxUtility, rootChildLimit(limit))
		if utility > best.Utility {
			best.Move = move
			best.Utility = utility
			sr.bound(node, true, best.Utility)
		}
	}

	best.Metric = s.metrics.Complete()
	return best, nil
}

func (sr *search) alphaBetaMax(board game.Board, alpha, beta Utility, limit int) (game.Move, Utility) {
	node := sr.nextNode()
	if utility, ok := sr.lookup(board, sr.color, limit); ok {
		return game.NoMove, utility
	}

	moves := sr.rules.LegalMoves(board, sr.color)
	if utility, ok := sr.evaluateLeaf(board, moves, limit); ok {
		return game.NoMove, utility
	}

	if sr.ordering {
		moves = orderMoves(sr.rules, moves, board, sr.color, sr.color, true)
	}

	entryAlpha := alpha
	cut := false
	bestMove, maxUtility := game.NoMove, MinUtility
	for _, move := range moves {
		child := sr.rules.Play(board, sr.color, move)
		_, utility := sr.alphaBetaMin(child, alpha, beta, decrement(limit))
		if utility > maxUtility {
			bestMove, maxUtility = move, utility
		}

		alpha = max(alpha, maxUtility)
		sr.bound(node, true, alpha)
		if beta <= alpha {
			sr.metrics.AddCutoff()
			cut = true
			break
		}
	}

	if sr.storable(cut, maxUtility > entryAlpha) {
		sr.store(board, sr.color, limit, maxUtility)
	}
	return bestMove, maxUtility
}

func (sr *search) alphaBetaMin(board game.Board, alpha, beta Utility, limit int) (game.Move, Utility) {
	node := sr.nextNode()
	opponent := sr.color.Opponent()
	if utility, ok := sr.lookup(board, opponent, limit); ok {
		return game.NoMove, utility
	}

	moves := sr.rules.LegalMoves(board, opponent)
	if utility, ok := sr.evaluateLeaf(board, moves, limit); ok {
		return game.NoMove, utility
	}

	if sr.ordering {
		moves = orderMoves(sr.rules, moves, board, opponent, sr.color, false)
	}

	entryBeta := beta
	cut := false
	bestMove, minUtility := game.NoMove, MaxUtility
	for _, move := range moves {
		child := sr.rules.Play(board, opponent, move)
		_, utility := sr.alphaBetaMax(child, alpha, beta, decrement(limit))
		if utility < minUtility {
			bestMove, minUtility = move, utility
		}

		beta = min(beta, minUtility)
		sr.bound(node, false, beta)
		if beta <= alpha {
			sr.metrics.AddCutoff()
			cut = true
			break
		}
	}

	if sr.storable(cut, minUtility < entryBeta) {
		sr.store(board, opponent, limit, minUtility)
	}
	return bestMove, minUtility
}

// storable reports whether an alpha-beta node result may be cached. Board
// keying stores everything. Context keying stores only exact values: no
// cutoff happened and the result improved on the bound the node was entered with.
func (sr *search) storable(cut, improved bool) bool {
	if sr.keying == KeyBoard {
		return true
	}
	return !cut && improved
}
