package game

// Player identifies the owner of a cell or the side to move. The zero value
// marks an empty cell.
type Player int

const (
	None Player = iota
	Player1
	Player2
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return None
	}
}

// Outcome classifies a state as still in play, won by one side, or drawn.
type Outcome int

const (
	Ongoing Outcome = iota
	Player1Win
	Player2Win
	Draw
)

// Winner returns the player who won, or None for ongoing and drawn states.
func (o Outcome) Winner() Player {
	switch o {
	case Player1Win:
		return Player1
	case Player2Win:
		return Player2
	default:
		return None
	}
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Player1Win:
		return "player1"
	case Player2Win:
		return "player2"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// OutcomeFor returns the winning outcome of player p.
func OutcomeFor(p Player) Outcome {
	switch p {
	case Player1:
		return Player1Win
	case Player2:
		return Player2Win
	default:
		return Ongoing
	}
}

// State is the board contract the searcher consumes. Dimensions and the
// connect length never change over the lifetime of a state.
//
// Play mutates the receiver: it drops a token for the player to move into the
// given column and hands the turn to the opponent. Copy returns a deep copy
// that shares nothing with the receiver.
type State interface {
	Width() int
	Height() int
	ConnectN() int
	At(x, y int) Player
	Player() Player
	Outcome() Outcome
	LegalMoves() []int
	Copy() State
	Play(column int)
}

// Reverser is implemented by states that can take back the last token dropped
// into a column. The searcher uses it to walk the tree on a single state
// instead of copying one per node.
type Reverser interface {
	Undo(column int)
}
