package searcher

import "connectn/game"

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning. It
// holds configuration only, so one value can serve concurrent decisions.
type AlphaBeta struct {
	maxDepth     int
	pruning      bool
	copyOnly     bool
	newCollector func() Collector
}

// Result is the outcome of one top-level decision.
type Result struct {
	Move    game.Move
	Score   int
	Metrics SearchMetric
}

// WithPruning switches alpha-beta cutoffs on or off. With pruning off the
// search is an exhaustive minimax over the same tree.
func WithPruning(enabled bool) Option {
	return func(ab *AlphaBeta) {
		ab.pruning = enabled
	}
}

// WithMetrics collects node, leaf and cutoff counts for every decision.
func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.newCollector = NewCollector
	}
}

// WithCopyOnly expands every node by copying the state, even when the state
// could be walked with Play and Undo.
func WithCopyOnly() Option {
	return func(ab *AlphaBeta) {
		ab.copyOnly = true
	}
}

func NewAlphaBeta(maxDepth int, options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		maxDepth:     maxDepth,
		pruning:      true,
		newCollector: NewDummyCollector,
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) MaxDepth() int {
	return ab.maxDepth
}

// ChooseMove returns the column the player to move should play, or
// game.NoMove when the state is already terminal or the depth is not positive.
func (ab *AlphaBeta) ChooseMove(state game.State) game.Move {
	return ab.Decide(state).Move
}

// Decide searches state on behalf of the player to move and returns the best
// column with its score. Among equally scored columns the highest one wins.
func (ab *AlphaBeta) Decide(state game.State) Result {
	metrics := ab.newCollector()
	s := &search{
		evaluator: NewEvaluator(state.Player(), ab.maxDepth),
		pruning:   ab.pruning,
		metrics:   metrics,
	}

	// Walk a private copy with Play/Undo when the state supports it
	root := state
	if !ab.copyOnly && isReverser(state) {
		root = state.Copy()
		s.inPlace = isReverser(root)
	}

	metrics.Start()
	score, move := s.alphaBeta(root, ab.maxDepth, -Infinity, Infinity, true)
	metric := metrics.Complete()
	metric.Depth = ab.maxDepth
	metric.Score = score

	return Result{Move: move, Score: score, Metrics: metric}
}

func isReverser(state game.State) bool {
	_, ok := state.(game.Reverser)
	return ok
}

// search carries what one decision needs across the recursion.
type search struct {
	evaluator Evaluator
	pruning   bool
	inPlace   bool
	metrics   Collector
}

// alphaBeta returns the minimax value of state and, for maximizing nodes, the
// column achieving it. The move of a minimizing or terminal node is NoMove.
func (s *search) alphaBeta(state game.State, depth, alpha, beta int, maximizing bool) (int, game.Move) {
	s.metrics.AddNode()

	var moves []int
	if state.Outcome() == game.Ongoing && depth > 0 {
		moves = state.LegalMoves()
	}
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return s.evaluator.Evaluate(state, depth), game.NoMove
	}

	if maximizing {
		value, best := -Infinity, game.NoMove
		s.expand(state, moves, func(child game.State, column int) bool {
			// A child that cannot beat alpha comes back at most alpha-1, so it
			// never ties the running best and steals the move
			v, _ := s.alphaBeta(child, depth-1, alpha-1, beta, false)
			if v >= value {
				value, best = v, game.Column(column)
			}
			alpha = max(alpha, value)
			return s.cutoff(alpha >= beta)
		})
		return value, best
	}

	value := Infinity
	s.expand(state, moves, func(child game.State, column int) bool {
		v, _ := s.alphaBeta(child, depth-1, alpha, beta, true)
		value = min(value, v)
		beta = min(beta, value)
		return s.cutoff(beta <= alpha)
	})
	return value, game.NoMove
}

// expand visits the children of state in column order until visit asks to
// stop. In place, the child is state itself between Play and Undo.
func (s *search) expand(state game.State, moves []int, visit func(child game.State, column int) (stop bool)) {
	if !s.inPlace {
		for _, successor := range successors(state, moves) {
			if visit(successor.State, successor.Column) {
				return
			}
		}
		return
	}

	reverser := state.(game.Reverser)
	for _, column := range moves {
		state.Play(column)
		stop := visit(state, column)
		reverser.Undo(column)
		if stop {
			return
		}
	}
}

func (s *search) cutoff(exhausted bool) bool {
	if !s.pruning || !exhausted {
		return false
	}
	s.metrics.AddCutoff()
	return true
}
