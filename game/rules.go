package game

import "fmt"

// Rules is everything the search needs to know about the game. Implementations
// must be pure: Play returns a new board and never mutates its input.
type Rules interface {
	// LegalMoves lists the moves available to player, in a deterministic order
	LegalMoves(board Board, player Player) []Move
	Play(board Board, player Player, move Move) Board
	// Score returns the disk counts of PlayerOne and PlayerTwo
	Score(board Board) (one, two int)
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// StandardRules implements Othello placement and flipping on a board of any size.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

// LegalMoves scans the board in row-major order, so ties between moves always
// resolve the same way.
func (sr *StandardRules) LegalMoves(board Board, player Player) []Move {
	var moves []Move
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			if board.At(row, col) != Empty {
				continue
			}
			if sr.capturesAny(board, player, row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (sr *StandardRules) Play(board Board, player Player, move Move) Board {
	if !board.InBounds(move.Row, move.Col) {
		panic(fmt.Sprintf("move %v is off a %dx%d board", move, board.Size(), board.Size()))
	}
	if board.At(move.Row, move.Col) != Empty {
		panic(fmt.Sprintf("move %v targets an occupied cell", move))
	}

	cells := []byte(board.cells)
	cells[board.index(move.Row, move.Col)] = byte(player.Cell())
	for _, d := range directions {
		n := captured(board, player, move.Row, move.Col, d[0], d[1])
		for i := 1; i <= n; i++ {
			cells[board.index(move.Row+i*d[0], move.Col+i*d[1])] = byte(player.Cell())
		}
	}
	return Board{size: board.size, cells: string(cells)}
}

func (sr *StandardRules) Score(board Board) (one, two int) {
	return board.Count()
}

func (sr *StandardRules) capturesAny(board Board, player Player, row, col int) bool {
	for _, d := range directions {
		if captured(board, player, row, col, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// captured counts the opponent disks flanked by player when placing at (row, col)
// and walking in direction (dr, dc). Zero unless the run ends on player's own disk.
func captured(board Board, player Player, row, col, dr, dc int) int {
	own := player.Cell()
	theirs := player.Opponent().Cell()
	n := 0
	r, c := row+dr, col+dc
	for board.InBounds(r, c) {
		switch board.At(r, c) {
		case theirs:
			n++
		case own:
			return n
		default:
			return 0
		}
		r, c = r+dr, c+dc
	}
	return 0
}
