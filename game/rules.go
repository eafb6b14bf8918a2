package game

import "fmt"

// Axes a line can run along: horizontal, vertical and both diagonals.
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}

// outcomeAt classifies the board after a token landed on (x, y). Only lines
// through that cell can have been completed by it.
func (b *Board) outcomeAt(x, y int) Outcome {
	p := b.At(x, y)
	for _, d := range directions {
		if b.runLength(x, y, d[0], d[1]) >= b.n {
			return OutcomeFor(p)
		}
	}
	if b.full() {
		return Draw
	}
	return Ongoing
}

// scanOutcome classifies an arbitrary board, rejecting boards won by both sides.
func (b *Board) scanOutcome() (Outcome, error) {
	winners := map[Player]bool{}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			if p == None || winners[p] {
				continue
			}
			for _, d := range directions {
				if b.runLength(x, y, d[0], d[1]) >= b.n {
					winners[p] = true
					break
				}
			}
		}
	}

	switch {
	case len(winners) > 1:
		return Ongoing, fmt.Errorf("%w: both players connected %d", ErrMalformedBoard, b.n)
	case winners[Player1]:
		return Player1Win, nil
	case winners[Player2]:
		return Player2Win, nil
	case b.full():
		return Draw, nil
	default:
		return Ongoing, nil
	}
}

// runLength counts the same-owner tokens through (x, y) along (dx, dy).
func (b *Board) runLength(x, y, dx, dy int) int {
	p := b.At(x, y)
	count := 1
	for i, j := x+dx, y+dy; b.inside(i, j) && b.At(i, j) == p; i, j = i+dx, j+dy {
		count++
	}
	for i, j := x-dx, y-dy; b.inside(i, j) && b.At(i, j) == p; i, j = i-dx, j-dy {
		count++
	}
	return count
}
