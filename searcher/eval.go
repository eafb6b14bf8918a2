package searcher

import "connectn/game"

// Axes a line can run along, as (dx, dy) steps: vertical, horizontal and both
// diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// Evaluator scores states from the perspective of one player, for a search
// that started maxDepth plies above the states it is asked about.
type Evaluator struct {
	player   game.Player
	maxDepth int
}

func NewEvaluator(player game.Player, maxDepth int) Evaluator {
	return Evaluator{player: player, maxDepth: maxDepth}
}

// Evaluate scores a state reached with depthRemaining plies left to search.
// Wins score near +WinScore, sooner wins higher; losses score near -WinScore,
// later losses higher. Any other state is scored by its usable lines.
func (e Evaluator) Evaluate(state game.State, depthRemaining int) int {
	consumed := e.maxDepth - depthRemaining
	opponent := e.player.Opponent()

	switch state.Outcome().Winner() {
	case e.player:
		return WinScore - DepthPenalty*consumed
	case opponent:
		return -WinScore + DepthPenalty*consumed
	}

	tally := countUsableLines(state)
	return weigh(tally[e.player]) - weigh(tally[opponent])
}

// weigh sums 10^(length-1) per counted line.
func weigh(counts []int) int {
	score := 0
	weight := 1
	for length := 1; length < len(counts); length++ {
		score += weight * counts[length]
		weight *= 10
	}
	return score
}

// lineTally holds, per owner, the number of usable lines of each length.
type lineTally [3][]int

// countUsableLines tallies the usable lines through every occupied cell that
// is not already part of a counted line. Dead lines are left out.
func countUsableLines(state game.State) lineTally {
	w, h := state.Width(), state.Height()
	longest := 2*max(w, h) + 1

	var tally lineTally
	for p := range tally {
		tally[p] = make([]int, longest)
	}

	visited := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			owner := state.At(x, y)
			if owner == game.None || visited[y*w+x] {
				continue
			}
			for _, d := range directions {
				dx, dy := d[0], d[1]
				length, forward, backward := usableLine(state, x, y, dx, dy)
				if length == 0 {
					continue
				}
				for i := 0; i < forward; i++ {
					visited[(y+i*dy)*w+x+i*dx] = true
				}
				for i := 0; i < backward; i++ {
					visited[(y-i*dy)*w+x-i*dx] = true
				}
				tally[owner][length]++
			}
		}
	}
	return tally
}

// usableLine walks from (x, y) along (dx, dy) and back again over cells of the
// same owner. Both walks include (x, y) itself, so the length counts the
// starting cell twice. A line whose two ends are both off the board or
// occupied can never be extended and has length 0.
func usableLine(state game.State, x, y, dx, dy int) (length, forward, backward int) {
	owner := state.At(x, y)

	for inside(state, x+forward*dx, y+forward*dy) && state.At(x+forward*dx, y+forward*dy) == owner {
		forward++
	}
	for inside(state, x-backward*dx, y-backward*dy) && state.At(x-backward*dx, y-backward*dy) == owner {
		backward++
	}

	if capped(state, x+forward*dx, y+forward*dy) && capped(state, x-backward*dx, y-backward*dy) {
		return 0, 0, 0
	}
	return forward + backward, forward, backward
}

func capped(state game.State, x, y int) bool {
	return !inside(state, x, y) || state.At(x, y) != game.None
}

func inside(state game.State, x, y int) bool {
	return x >= 0 && x < state.Width() && y >= 0 && y < state.Height()
}
