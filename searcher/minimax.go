package searcher

import (
	"othello/game"
)

// SelectMoveMinimax picks the move of color with the highest minimax utility,
// searching limit plies (negative for no limit). Ties keep the first move in
// generation order.
func (s *Searcher) SelectMoveMinimax(board game.Board, color game.Player, limit int, caching bool) (Result, error) {
	moves := s.rules.LegalMoves(board, color)
	if len(moves) == 0 {
		return Result{Move: game.NoMove}, ErrNoLegalMove
	}

	s.metrics.Start(MinimaxAlgorithm, limit, caching, false)
	sr := s.newSearch(color, caching, false)
	sr.nextNode()

	best := Result{Move: game.NoMove, Utility: MinUtility}
	for _, move := range moves {
		child := s.rules.Play(board, color, move)
		_, utility := sr.minimaxMin(child, rootChildLimit(limit))
		if utility > best.Utility {
			best.Move = move
			best.Utility = utility
		}
	}

	best.Metric = s.metrics.Complete()
	return best, nil
}

func (sr *search) minimaxMax(board game.Board, limit int) (game.Move, Utility) {
	sr.nextNode()
	if utility, ok := sr.lookup(board, sr.color, limit); ok {
		return game.NoMove, utility
	}

	moves := sr.rules.LegalMoves(board, sr.color)
	if utility, ok := sr.evaluateLeaf(board, moves, limit); ok {
		return game.NoMove, utility
	}

	bestMove, maxUtility := game.NoMove, MinUtility
	for _, move := range moves {
		child := sr.rules.Play(board, sr.color, move)
		_, utility := sr.minimaxMin(child, decrement(limit))
		if utility > maxUtility {
			bestMove, maxUtility = move, utility
		}
	}

	sr.store(board, sr.color, limit, maxUtility)
	return bestMove, maxUtility
}

func (sr *search) minimaxMin(board game.Board, limit int) (game.Move, Utility) {
	sr.nextNode()
	opponent := sr.color.Opponent()
	if utility, ok := sr.lookup(board, opponent, limit); ok {
		return game.NoMove, utility
	}

	moves := sr.rules.LegalMoves(board, opponent)
	if utility, ok := sr.evaluateLeaf(board, moves, limit); ok {
		return game.NoMove, utility
	}

	bestMove, minUtility := game.NoMove, MaxUtility
	for _, move := range moves {
		child := sr.rules.Play(board, opponent, move)
		_, utility := sr.minimaxMax(child, decrement(limit))
		if utility < minUtility {
			bestMove, minUtility = move, utility
		}
	}

	sr.store(board, opponent, limit, minUtility)
	return bestMove, minUtility
}
