package agent

import (
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// move. The same seed always produces the same sequence of choices.
func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	if rules == nil {
		rules = game.NewStandardRules()
	}
	return &randomAgent{rules: rules, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board, color game.Player) (game.Move, metrics.SearchMetric, error) {
	moves := a.rules.LegalMoves(board, color)
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoLegalMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Algorithm: "random"}, nil
}
