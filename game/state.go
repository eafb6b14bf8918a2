package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidColumn  = errors.New("invalid column")
	ErrColumnFull     = errors.New("column is full")
	ErrGameOver       = errors.New("game is over")
	ErrMalformedBoard = errors.New("malformed board")
)

// Board is a gravity grid of width x height cells where players take turns
// dropping tokens until one of them connects n in a row. Row 0 is the bottom.
type Board struct {
	width   int
	height  int
	n       int
	cells   []Player // Indexed by y*width + x
	heights []int    // Tokens per column
	player  Player
	outcome Outcome
	moves   int
}

// NewBoard returns an empty board with player 1 to move.
func NewBoard(width, height, n int) *Board {
	if width <= 0 || height <= 0 || n <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d connect %d", width, height, n))
	}
	return &Board{
		width:   width,
		height:  height,
		n:       n,
		cells:   make([]Player, width*height),
		heights: make([]int, width),
		player:  Player1,
		outcome: Ongoing,
	}
}

// ParseBoard builds a board from rows listed top to bottom, using '.' for an
// empty cell and '1' or '2' for tokens. The player to move and the outcome are
// derived from the tokens.
func ParseBoard(n int, rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: connect length %d", ErrMalformedBoard, n)
	}

	width, height := len(rows[0]), len(rows)
	b := NewBoard(width, height, n)
	counts := map[Player]int{}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, i, len(row), width)
		}
		y := height - 1 - i
		for x, c := range row {
			var p Player
			switch c {
			case '.':
				p = None
			case '1':
				p = Player1
			case '2':
				p = Player2
			default:
				return nil, fmt.Errorf("%w: unexpected cell %q", ErrMalformedBoard, c)
			}
			b.cells[y*width+x] = p
			counts[p]++
		}
	}

	// Tokens must rest on the bottom or on another token
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if b.At(x, y) == None {
				continue
			}
			if y != b.heights[x] {
				return nil, fmt.Errorf("%w: floating token in column %d", ErrMalformedBoard, x)
			}
			b.heights[x]++
		}
	}

	switch counts[Player1] - counts[Player2] {
	case 0:
		b.player = Player1
	case 1:
		b.player = Player2
	default:
		return nil, fmt.Errorf("%w: %d tokens for player 1 and %d for player 2", ErrMalformedBoard, counts[Player1], counts[Player2])
	}
	b.moves = counts[Player1] + counts[Player2]

	outcome, err := b.scanOutcome()
	if err != nil {
		return nil, err
	}
	b.outcome = outcome
	return b, nil
}

// MustParseBoard is ParseBoard for literals known to be well formed.
func MustParseBoard(n int, rows ...string) *Board {
	b, err := ParseBoard(n, rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Width() int       { return b.width }
func (b *Board) Height() int      { return b.height }
func (b *Board) ConnectN() int    { return b.n }
func (b *Board) Player() Player   { return b.player }
func (b *Board) Outcome() Outcome { return b.outcome }
func (b *Board) Moves() int       { return b.moves }

// At returns the owner of cell (x, y), or None outside the board.
func (b *Board) At(x, y int) Player {
	if !b.inside(x, y) {
		return None
	}
	return b.cells[y*b.width+x]
}

// LegalMoves lists the columns with room left, in ascending order. A finished
// game has no legal moves.
func (b *Board) LegalMoves() []int {
	if b.outcome != Ongoing {
		return nil
	}
	moves := make([]int, 0, b.width)
	for x, h := range b.heights {
		if h < b.height {
			moves = append(moves, x)
		}
	}
	return moves
}

func (b *Board) Copy() State {
	return b.Clone()
}

// Clone is Copy with the concrete type preserved.
func (b *Board) Clone() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)

	return &Board{
		width:   b.width,
		height:  b.height,
		n:       b.n,
		cells:   cells,
		heights: heights,
		player:  b.player,
		outcome: b.outcome,
		moves:   b.moves,
	}
}

// Drop places a token for the player to move in the lowest empty cell of the
// column, updates the outcome and passes the turn.
func (b *Board) Drop(column int) error {
	if b.outcome != Ongoing {
		return ErrGameOver
	}
	if column < 0 || column >= b.width {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}
	y := b.heights[column]
	if y >= b.height {
		return fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	b.cells[y*b.width+column] = b.player
	b.heights[column]++
	b.moves++
	b.outcome = b.outcomeAt(column, y)
	b.player = b.player.Opponent()
	return nil
}

// Play is Drop for callers that only ever pass legal columns.
func (b *Board) Play(column int) {
	if err := b.Drop(column); err != nil {
		panic(fmt.Sprintf("illegal play: %v", err))
	}
}

// Undo removes the top token of the column and gives the turn back to the
// player who dropped it. The state before that drop was necessarily ongoing.
func (b *Board) Undo(column int) {
	if column < 0 || column >= b.width || b.heights[column] == 0 {
		panic(fmt.Sprintf("nothing to undo in column %d", column))
	}
	b.heights[column]--
	b.cells[b.heights[column]*b.width+column] = None
	b.moves--
	b.player = b.player.Opponent()
	b.outcome = Ongoing
}

// String renders the board top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			switch b.At(x, y) {
			case Player1:
				sb.WriteByte('1')
			case Player2:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) full() bool {
	return b.moves == b.width*b.height
}
