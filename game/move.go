package game

import (
	"encoding/json"
	"fmt"
)

// Move places a disk at (Row, Col). It is only meaningful relative to a board and a player.
type Move struct {
	Row int
	Col int
}

// NoMove is returned by search nodes that did not expand any child.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.Row, m.Col)
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{m.Row, m.Col})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decoding move: %w", err)
	}
	m.Row, m.Col = pair[0], pair[1]
	return nil
}
