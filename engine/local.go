package engine

import (
	"context"
	"fmt"
	"time"

	"connectn/agent"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/meta"
	"connectn/utils"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithMaxTurns stops the game after turns moves. A nonpositive value leaves
// the game to run until the board is decided.
func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		e.maxTurns = turns
	}
}

// Local drives two agents over one board in the same process.
type Local struct {
	board    *game.Board
	agents   []agent.Agent
	maxTurns int
}

// LocalEngine pairs agents[0] with player 1 and agents[1] with player 2.
func LocalEngine(board *game.Board, agents []agent.Agent, options ...Option) *Local {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}

	e := &Local{
		board:    board,
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) Board() *game.Board {
	return e.board
}

// Run executes the game loop. On error the metrics cover the moves played so far.
func (e *Local) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.board.Player()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", e.board.Player())

	var err error
	for turn := 1; e.board.Outcome() == game.Ongoing; turn++ {
		if e.maxTurns > 0 && turn > e.maxTurns {
			log.Debug().Msgf("stopped after %d turns", e.maxTurns)
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}

		var moveMetric metrics.MoveMetric
		moveMetric, err = e.turn(turn)
		if err != nil {
			break
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Outcome = e.board.Outcome().String()
	gameMetric.Winner = int(e.board.Outcome().Winner())

	return gameMetric, moveMetrics, err
}

func (e *Local) turn(step int) (metrics.MoveMetric, error) {
	player := e.board.Player()
	a := e.agents[player-1]

	move, searchMetric := a.FindMove(e.board)
	column, ok := move.Column()
	if !ok {
		return metrics.MoveMetric{}, fmt.Errorf("%w: %s as player %d on turn %d", ErrNoMove, a.Name(), player, step)
	}
	if utils.FindIndex(e.board.LegalMoves(), column) < 0 {
		return metrics.MoveMetric{}, fmt.Errorf("%w: %s as player %d chose column %d", ErrIllegalMove, a.Name(), player, column)
	}
	if err := e.board.Drop(column); err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}

	log.Debug().
		Int("turn", step).
		Str("agent", a.Name()).
		Int("player", int(player)).
		Int("column", column).
		Str("outcome", e.board.Outcome().String()).
		Msg("played move")

	return metrics.MoveMetric{
		Step:         step,
		Player:       int(player),
		Column:       column,
		SearchMetric: searchMetric,
	}, nil
}
