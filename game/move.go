package game

import "strconv"

// Move is a column choice, or NoMove when there is nothing to play.
type Move struct {
	column int
	ok     bool
}

// NoMove is returned when a search ends without choosing a column.
var NoMove = Move{}

func Column(column int) Move {
	return Move{column: column, ok: true}
}

// Column returns the chosen column and whether the move holds one at all.
func (m Move) Column() (int, bool) {
	return m.column, m.ok
}

func (m Move) IsNone() bool {
	return !m.ok
}

func (m Move) String() string {
	if !m.ok {
		return "none"
	}
	return strconv.Itoa(m.column)
}
