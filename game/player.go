package game

import "fmt"

type Player int

const (
	NoPlayer  Player = iota // Also reported as the winner of a drawn game
	PlayerOne               // Dark, moves first
	PlayerTwo               // Light
)

// ParsePlayer converts the wire value (1 for dark, 2 for light) into a Player.
func ParsePlayer(value int) (Player, error) {
	switch Player(value) {
	case PlayerOne, PlayerTwo:
		return Player(value), nil
	}
	return NoPlayer, fmt.Errorf("invalid player %d: want 1 (dark) or 2 (light)", value)
}

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

func (p Player) Cell() Cell {
	switch p {
	case PlayerOne:
		return Dark
	case PlayerTwo:
		return Light
	}
	return Empty
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "dark"
	case PlayerTwo:
		return "light"
	}
	return "none"
}
