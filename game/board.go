package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var ErrMalformedBoard = errors.New("malformed board")

type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
)

// Board is an immutable square grid of cells. Boards are comparable values, so
// they can be used directly as map keys; applying a move always yields a new Board.
type Board struct {
	size  int
	cells string // row-major, one byte per cell
}

// NewBoard builds a board from a list of rows holding 0 (empty), 1 (dark) or 2 (light).
func NewBoard(rows [][]int) (Board, error) {
	size := len(rows)
	if size < 2 {
		return Board{}, fmt.Errorf("%w: need at least 2 rows, got %d", ErrMalformedBoard, size)
	}

	cells := make([]byte, 0, size*size)
	for r, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), size)
		}
		for c, value := range row {
			if value < int(Empty) || value > int(Light) {
				return Board{}, fmt.Errorf("%w: cell (%d, %d) holds %d", ErrMalformedBoard, r, c, value)
			}
			cells = append(cells, byte(value))
		}
	}
	return Board{size: size, cells: string(cells)}, nil
}

// StartingBoard returns the standard opening position for an even board size.
func StartingBoard(size int) Board {
	if size < 4 || size%2 != 0 {
		panic(fmt.Sprintf("board size must be even and at least 4, got %d", size))
	}
	cells := make([]byte, size*size)
	mid := size / 2
	cells[(mid-1)*size+mid-1] = byte(Light)
	cells[mid*size+mid] = byte(Light)
	cells[(mid-1)*size+mid] = byte(Dark)
	cells[mid*size+mid-1] = byte(Dark)
	return Board{size: size, cells: string(cells)}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) IsZero() bool {
	return b.size == 0
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b Board) At(row, col int) Cell {
	return Cell(b.cells[row*b.size+col])
}

// Count returns the number of dark and light disks on the board.
func (b Board) Count() (dark, light int) {
	for i := 0; i < len(b.cells); i++ {
		switch Cell(b.cells[i]) {
		case Dark:
			dark++
		case Light:
			light++
		}
	}
	return dark, light
}

func (b Board) Corners() [4]Move {
	last := b.size - 1
	return [4]Move{{0, 0}, {0, last}, {last, 0}, {last, last}}
}

// Hash is a 64-bit digest of the cell contents, used to identify positions in logs and records.
func (b Board) Hash() uint64 {
	return xxhash.Sum64String(b.cells)
}

func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range rows {
		rows[r] = make([]int, b.size)
		for c := range rows[r] {
			rows[r][c] = int(b.At(r, c))
		}
	}
	return rows
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			switch b.At(r, c) {
			case Dark:
				sb.WriteByte('X')
			case Light:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Rows())
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	board, err := NewBoard(rows)
	if err != nil {
		return err
	}
	*b = board
	return nil
}

func (b Board) index(row, col int) int {
	return row*b.size + col
}
