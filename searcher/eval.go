package searcher

import "othello/game"

// Weights of the heuristic evaluation
const (
	PieceWeight    = 10
	MobilityWeight = 3
	CornerWeight   = 20
)

// Evaluate scores a board from color's perspective; positive favors color.
type Evaluate func(rules game.Rules, board game.Board, color game.Player) Utility

// ExactUtility is the disk count differential from color's perspective.
func ExactUtility(rules game.Rules, board game.Board, color game.Player) Utility {
	one, two := rules.Score(board)
	if color == game.PlayerOne {
		return Utility(one - two)
	}
	return Utility(two - one)
}

// Heuristic combines the piece, mobility and corner differentials from color's perspective.
func Heuristic(rules game.Rules, board game.Board, color game.Player) Utility {
	opponent := color.Opponent()

	pieceDiff := ExactUtility(rules, board, color)
	mobilityDiff := Utility(len(rules.LegalMoves(board, color)) - len(rules.LegalMoves(board, opponent)))

	var cornerDiff Utility
	for _, corner := range board.Corners() {
		switch board.At(corner.Row, corner.Col) {
		case color.Cell():
			cornerDiff++
		case opponent.Cell():
			cornerDiff--
		}
	}

	return PieceWeight*pieceDiff + MobilityWeight*mobilityDiff + CornerWeight*cornerDiff
}
