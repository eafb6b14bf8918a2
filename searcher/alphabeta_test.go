package searcher

import (
	"fmt"
	"testing"

	"connectn/game"

	"github.com/stretchr/testify/require"
)

/**
Tests depth-limited alpha-beta search on real boards
- terminal handling:
	- finished board -> no move, static score
	- depth 0 -> no move, static score
- choices:
	- immediate win -> winning column
	- opponent threat -> blocking column
	- equal maxima -> highest column
- pruning:
	- same score and move as exhaustive minimax, fewer or equal nodes
	- in place (Play/Undo) and copying expansions agree node for node
- determinism: repeated decisions agree
*/

func TestAlphaBetaTerminalStates(t *testing.T) {
	t.Run("returning no move on a full drawn board", func(t *testing.T) {
		b := game.MustParseBoard(4,
			"1122112",
			"2211221",
			"1122112",
			"2211221",
			"1122112",
			"2211221",
		)
		require.Equal(t, game.Draw, b.Outcome())

		got := NewAlphaBeta(4).Decide(b)

		require.True(t, got.Move.IsNone(), "Search should not choose a column on a full board")
		require.Equal(t, NewEvaluator(b.Player(), 4).Evaluate(b, 4), got.Score,
			"Score should be the static evaluation of the root")
	})

	t.Run("returning no move on a won board", func(t *testing.T) {
		b := game.MustParseBoard(4,
			".......",
			"222....",
			"1111...",
		)

		got := NewAlphaBeta(3).Decide(b)

		require.True(t, got.Move.IsNone())
		require.Equal(t, -WinScore, got.Score, "Player 2 lost before any ply was searched")
	})

	t.Run("degrading to a static evaluation at depth 0", func(t *testing.T) {
		for _, depth := range []int{0, -2} {
			b := game.NewBoard(7, 6, 4)

			got := NewAlphaBeta(depth, WithMetrics()).Decide(b)

			require.True(t, got.Move.IsNone(), "Depth %d should not choose a column", depth)
			require.Equal(t, 0, got.Score, "Empty board should score 0")
			require.Equal(t, 1, got.Metrics.Nodes, "Only the root should be visited")
		}
	})
}

func TestAlphaBetaChoices(t *testing.T) {
	t.Run("completing a line of three", func(t *testing.T) {
		b := game.MustParseBoard(4,
			".......",
			".......",
			".......",
			".......",
			"2......",
			"111..22",
		)

		for depth := 1; depth <= 4; depth++ {
			got := NewAlphaBeta(depth).Decide(b)

			require.Equal(t, game.Column(3), got.Move, "Depth %d should complete the line", depth)
			require.Equal(t, WinScore-DepthPenalty, got.Score, "Win after one ply at depth %d", depth)
		}
	})

	t.Run("blocking the opponent's line of three", func(t *testing.T) {
		b := game.MustParseBoard(4,
			".......",
			".......",
			".......",
			".......",
			"11.....",
			"222...1",
		)
		require.Equal(t, game.Player1, b.Player())

		for depth := 2; depth <= 3; depth++ {
			got := NewAlphaBeta(depth).Decide(b)

			require.Equal(t, game.Column(3), got.Move, "Depth %d should block", depth)
			require.Greater(t, got.Score, -WinScore/2, "Blocking should avoid the loss")
		}
	})

	t.Run("scoring an open threat as a loss on the second ply", func(t *testing.T) {
		b := game.MustParseBoard(4,
			".......",
			".......",
			".......",
			".......",
			"11.....",
			"222...1",
		)

		for _, column := range []int{0, 1, 2, 4, 5, 6} {
			require.Equal(t, -WinScore+2*DepthPenalty, minimizingScore(t, b, column, 2),
				"Leaving column 3 open by playing %d should lose on the second ply", column)
		}
	})

	t.Run("preferring the highest of two winning columns", func(t *testing.T) {
		b := game.MustParseBoard(4,
			".......",
			".......",
			".......",
			".......",
			"..22...",
			".111..2",
		)

		for depth := 1; depth <= 3; depth++ {
			got := NewAlphaBeta(depth).Decide(b)

			require.Equal(t, game.Column(4), got.Move, "Depth %d should break the tie upwards", depth)
			require.Equal(t, WinScore-DepthPenalty, got.Score)
		}
	})

	t.Run("preferring the highest column on an empty symmetric board", func(t *testing.T) {
		b := game.NewBoard(3, 1, 3)

		got := NewAlphaBeta(1, WithPruning(false)).Decide(b)
		pruned := NewAlphaBeta(1).Decide(b)

		require.Equal(t, game.Column(2), got.Move, "Every column scores the same")
		require.Equal(t, got, pruned)
	})
}

// minimizingScore is the exhaustive score of playing column for the player to
// move in b, searched depth plies deep.
func minimizingScore(t *testing.T, b *game.Board, column, depth int) int {
	t.Helper()
	child := b.Clone()
	child.Play(column)
	s := &search{
		evaluator: NewEvaluator(b.Player(), depth),
		metrics:   NewDummyCollector(),
	}
	score, move := s.alphaBeta(child, depth-1, -Infinity, Infinity, false)
	require.True(t, move.IsNone(), "Minimizing nodes should not report a move")
	return score
}

func TestAlphaBetaPruningEquivalence(t *testing.T) {
	positions := randomPositions(7, 40, 20)

	for i, b := range positions {
		for depth := 1; depth <= 4; depth++ {
			t.Run(fmt.Sprintf("position %d depth %d", i, depth), func(t *testing.T) {
				exhaustive := NewAlphaBeta(depth, WithPruning(false), WithMetrics()).Decide(b)
				pruned := NewAlphaBeta(depth, WithMetrics()).Decide(b)

				require.Equal(t, exhaustive.Score, pruned.Score, "Pruning should not change the score\n%s", b)
				require.Equal(t, exhaustive.Move, pruned.Move, "Pruning should not change the move\n%s", b)
				require.LessOrEqual(t, pruned.Metrics.Nodes, exhaustive.Metrics.Nodes,
					"Pruning should never visit more nodes")
				require.Zero(t, exhaustive.Metrics.Cutoffs, "Exhaustive search should not cut off")
			})
		}
	}
}

func TestAlphaBetaExpansionModes(t *testing.T) {
	positions := randomPositions(11, 25, 24)

	for i, b := range positions {
		t.Run(fmt.Sprintf("position %d", i), func(t *testing.T) {
			before := b.String()

			inPlace := NewAlphaBeta(4, WithMetrics()).Decide(b)
			copied := NewAlphaBeta(4, WithMetrics(), WithCopyOnly()).Decide(b)
			hidden := NewAlphaBeta(4, WithMetrics()).Decide(copyState{State: b})

			require.Equal(t, copied.Move, inPlace.Move)
			require.Equal(t, copied.Score, inPlace.Score)
			require.Equal(t, copied.Metrics.Nodes, inPlace.Metrics.Nodes, "Both modes should walk the same tree")
			require.Equal(t, copied.Metrics.Cutoffs, inPlace.Metrics.Cutoffs)
			require.Equal(t, copied.Move, hidden.Move)
			require.Equal(t, copied.Score, hidden.Score)
			require.Equal(t, before, b.String(), "Searching should not mutate the input state")
		})
	}
}

func TestAlphaBetaCopiesOnce(t *testing.T) {
	copies := 0
	b := countingState{State: game.NewBoard(7, 6, 4), copies: &copies}

	NewAlphaBeta(3, WithPruning(false)).Decide(b)

	require.Equal(t, 7+49+343, copies, "Copying expansion should copy once per child")
}

func TestAlphaBetaMetrics(t *testing.T) {
	t.Run("counting every node of an exhaustive search", func(t *testing.T) {
		b := game.NewBoard(7, 6, 4)

		got := NewAlphaBeta(4, WithPruning(false), WithMetrics()).Decide(b)

		require.Equal(t, 1+7+49+343+2401, got.Metrics.Nodes)
		require.Equal(t, 2401, got.Metrics.Leaves)
		require.Equal(t, 4, got.Metrics.Depth)
		require.Equal(t, got.Score, got.Metrics.Score)
	})

	t.Run("cutting off with pruning", func(t *testing.T) {
		b := game.NewBoard(7, 6, 4)

		got := NewAlphaBeta(4, WithMetrics()).Decide(b)

		require.Positive(t, got.Metrics.Cutoffs)
		require.Less(t, got.Metrics.Nodes, 1+7+49+343+2401)
	})

	t.Run("reporting depth and score without a collector", func(t *testing.T) {
		b := game.NewBoard(7, 6, 4)

		got := NewAlphaBeta(2).Decide(b)

		require.Zero(t, got.Metrics.Nodes, "Dummy collector should not count")
		require.Equal(t, 2, got.Metrics.Depth)
		require.Equal(t, got.Score, got.Metrics.Score)
	})
}

func TestAlphaBetaDeterminism(t *testing.T) {
	for i, b := range randomPositions(3, 10, 16) {
		ab := NewAlphaBeta(4)
		first := ab.Decide(b)
		for run := 0; run < 3; run++ {
			again := ab.Decide(b)
			require.Equal(t, first.Move, again.Move, "Position %d should always pick the same move", i)
			require.Equal(t, first.Score, again.Score)
		}
	}
}

func TestSuccessors(t *testing.T) {
	t.Run("expanding every legal column in order", func(t *testing.T) {
		b := game.MustParseBoard(4,
			"1..",
			"2..",
			"1.2",
		)
		before := b.String()

		got := Successors(b)

		require.Len(t, got, 2)
		require.Equal(t, 1, got[0].Column)
		require.Equal(t, 2, got[1].Column)
		require.Equal(t, game.Player1, got[0].State.At(1, 0), "Child should hold the new token")
		require.Equal(t, game.Player2, got[0].State.Player(), "Child should pass the turn")
		require.Equal(t, before, b.String(), "Parent should not change")
	})

	t.Run("expanding nothing on a finished board", func(t *testing.T) {
		b := game.MustParseBoard(3,
			"...",
			"22.",
			"111",
		)

		require.Empty(t, Successors(b))
	})
}
