package agent

import (
	"connectn/game"
	"connectn/searcher"

	"golang.org/x/exp/rand"
)

// randomAgent plays a uniformly random legal column. It owns its source, so
// one value must not be shared between concurrent games.
type randomAgent struct {
	name string
	rng  *rand.Rand
}

func NewRandomAgent(name string, seed uint64) Agent {
	return &randomAgent{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) Name() string {
	return a.name
}

func (a *randomAgent) FindMove(state game.State) (game.Move, searcher.SearchMetric) {
	if state.Outcome() != game.Ongoing {
		return game.NoMove, searcher.SearchMetric{}
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, searcher.SearchMetric{}
	}
	return game.Column(moves[a.rng.Intn(len(moves))]), searcher.SearchMetric{}
}
