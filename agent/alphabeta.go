package agent

import (
	"connectn/game"
	"connectn/searcher"

	"github.com/rs/zerolog/log"
)

type alphaBetaAgent struct {
	name     string
	searcher *searcher.AlphaBeta
}

// NewAlphaBetaAgent returns an agent that searches maxDepth plies ahead on
// behalf of whichever player is to move when FindMove is called.
func NewAlphaBetaAgent(name string, maxDepth int, options ...searcher.Option) Agent {
	return &alphaBetaAgent{
		name:     name,
		searcher: searcher.NewAlphaBeta(maxDepth, options...),
	}
}

func (a *alphaBetaAgent) Name() string {
	return a.name
}

func (a *alphaBetaAgent) FindMove(state game.State) (game.Move, searcher.SearchMetric) {
	result := a.searcher.Decide(state)

	log.Debug().
		Str("agent", a.name).
		Int("player", int(state.Player())).
		Int("depth", a.searcher.MaxDepth()).
		Stringer("move", result.Move).
		Int("score", result.Score).
		Int("nodes", result.Metrics.Nodes).
		Dur("duration", result.Metrics.Duration).
		Msg("found move")

	return result.Move, result.Metrics
}
