package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

var ErrIllegalMove = errors.New("illegal move")

// Update records one played move and the board it produced.
type Update struct {
	Player game.Player
	Move   game.Move
	Board  game.Board
	Hash   uint64
}

type Engine struct {
	Rules   game.Rules
	Board   game.Board
	ToMove  game.Player
	Agents  [2]agent.Agent // Indexed by player wire value - 1
	History []Update
}

// LocalEngine sets up a game between two agents on board, with PlayerOne to move.
func LocalEngine(agents []agent.Agent, board game.Board, rules game.Rules) *Engine {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}
	if rules == nil {
		rules = game.NewStandardRules()
	}

	return &Engine{
		Rules:  rules,
		Board:  board,
		ToMove: game.PlayerOne,
		Agents: [2]agent.Agent{agents[0], agents[1]},
	}
}

// Run executes the game loop. A player without legal moves passes; the game
// ends when both players have to pass in a row.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.ToMove),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.ToMove)

	consecutivePasses := 0
	for step := 1; step <= MaxMoves && consecutivePasses < 2; step++ {
		legal := e.Rules.LegalMoves(e.Board, e.ToMove)
		if len(legal) == 0 {
			log.Debug().Msgf("player %s passes", e.ToMove)
			consecutivePasses++
			gameMetric.Passes++
			e.ToMove = e.ToMove.Opponent()
			continue
		}
		consecutivePasses = 0

		move, searchMetric, err := e.Agents[e.ToMove-1].FindMove(e.Board, e.ToMove)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("player %s failed to find a move: %w", e.ToMove, err)
		}
		if !lo.Contains(legal, move) {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%w: player %s played %v", ErrIllegalMove, e.ToMove, move)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(e.ToMove),
			SearchMetric: searchMetric,
		})

		e.Board = e.Rules.Play(e.Board, e.ToMove, move)
		e.History = append(e.History, Update{
			Player: e.ToMove,
			Move:   move,
			Board:  e.Board,
			Hash:   e.Board.Hash(),
		})
		e.ToMove = e.ToMove.Opponent()
	}

	winner := e.Winner()
	gameMetric.ScoreOne, gameMetric.ScoreTwo = e.Rules.Score(e.Board)
	gameMetric.Winner = int(winner)
	gameMetric.TotalMoves = len(e.History)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Debug().
		Int("dark", gameMetric.ScoreOne).
		Int("light", gameMetric.ScoreTwo).
		Msgf("game over, winner: %s", winner)
	return winner, gameMetric, moveMetrics, nil
}

// Winner returns the player with more disks, or NoPlayer for a draw.
func (e *Engine) Winner() game.Player {
	one, two := e.Rules.Score(e.Board)
	switch {
	case one > two:
		return game.PlayerOne
	case two > one:
		return game.PlayerTwo
	}
	return game.NoPlayer
}

// IsPass reports whether err means the agent had no legal move.
func IsPass(err error) bool {
	return errors.Is(err, searcher.ErrNoLegalMove)
}
