package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game in case the rules never terminate it.
const MaxMoves = 10000

type Runner interface {
	// Run plays a game till neither player can move or MaxMoves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
