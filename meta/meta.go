// meta/meta.go
package meta

// WIDTH, HEIGHT and CONNECT_N describe the standard board.
const (
	WIDTH     = 7
	HEIGHT    = 6
	CONNECT_N = 4
)

// DEPTH is the search depth used when none is configured.
const DEPTH = 4

// GO_ROUTINES defines the number of games played at once by an experiment.
const GO_ROUTINES = 8

// MAX_TURNS caps a game; 0 lets the board's capacity end it.
const MAX_TURNS = 0
