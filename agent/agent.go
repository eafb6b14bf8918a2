package agent

import (
	"connectn/game"
	"connectn/searcher"
)

type Agent interface {
	Name() string
	// FindMove returns the column to play for the player to move in state and
	// the metrics of the search behind it. It returns game.NoMove when state
	// offers no move.
	FindMove(state game.State) (game.Move, searcher.SearchMetric)
}
