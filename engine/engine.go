package engine

import (
	"context"
	"errors"

	"connectn/experiments/metrics"
)

var (
	ErrNoMove      = errors.New("agent returned no move")
	ErrIllegalMove = errors.New("agent returned an illegal move")
)

type Engine interface {
	// Run plays a game till it is decided, the turn limit is reached or ctx is done
	Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error)
}
