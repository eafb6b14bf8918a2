package agent

import (
	"errors"
	"fmt"

	"connectn/config"
	"connectn/searcher"
)

const (
	KindAlphaBeta = "alphabeta"
	KindRandom    = "random"
)

var ErrUnknownKind = errors.New("unknown agent kind")

// New builds the agent described by cfg. Search agents always collect
// metrics so experiments can record them.
func New(cfg config.Agent) (Agent, error) {
	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("agent-%d", cfg.ID)
	}

	switch cfg.Kind {
	case "", KindAlphaBeta:
		if cfg.Depth <= 0 {
			return nil, fmt.Errorf("agent %d: depth must be positive, got %d", cfg.ID, cfg.Depth)
		}
		options := []searcher.Option{searcher.WithMetrics()}
		if cfg.NoPruning {
			options = append(options, searcher.WithPruning(false))
		}
		return NewAlphaBetaAgent(name, cfg.Depth, options...), nil
	case KindRandom:
		return NewRandomAgent(name, cfg.Seed), nil
	default:
		return nil, fmt.Errorf("agent %d: %w %q", cfg.ID, ErrUnknownKind, cfg.Kind)
	}
}
