package searcher

import (
	"connectn/game"

	"golang.org/x/exp/rand"
)

// copyState hides Undo so the searcher has to expand by copying.
type copyState struct {
	game.State
}

func (s copyState) Copy() game.State {
	return copyState{State: s.State.Copy()}
}

// countingState counts the copies made of it and of its descendants.
type countingState struct {
	game.State
	copies *int
}

func (s countingState) Copy() game.State {
	*s.copies++
	return countingState{State: s.State.Copy(), copies: s.copies}
}

// randomPositions plays up to plies random moves from an empty 7x6 board, once
// per position, with a fixed seed.
func randomPositions(seed uint64, count, plies int) []*game.Board {
	rng := rand.New(rand.NewSource(seed))
	positions := make([]*game.Board, 0, count)
	for len(positions) < count {
		b := game.NewBoard(7, 6, 4)
		n := rng.Intn(plies + 1)
		for i := 0; i < n; i++ {
			moves := b.LegalMoves()
			if len(moves) == 0 {
				break
			}
			b.Play(moves[rng.Intn(len(moves))])
		}
		positions = append(positions, b)
	}
	return positions
}
