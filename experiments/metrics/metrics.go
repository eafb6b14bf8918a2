package metrics

import (
	"time"

	"connectn/searcher"
)

// AgentConfig is the row describing one agent taking part in an experiment.
type AgentConfig struct {
	ID      int
	Name    string
	Kind    string
	Depth   int
	Seed    uint64
	Pruning bool
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Column int
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 for draws and unfinished games
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
