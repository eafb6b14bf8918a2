package searcher

import "connectn/game"

// Successor is a state one ply away from its parent, paired with the column
// that produced it.
type Successor struct {
	State  game.State
	Column int
}

// Successors returns every state reachable from state in one ply, in the
// ascending column order reported by state. The input state is not mutated.
func Successors(state game.State) []Successor {
	return successors(state, state.LegalMoves())
}

func successors(state game.State, moves []int) []Successor {
	children := make([]Successor, 0, len(moves))
	for _, column := range moves {
		child := state.Copy()
		child.Play(column)
		children = append(children, Successor{State: child, Column: column})
	}
	return children
}
