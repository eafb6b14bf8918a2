package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reading agents and matchups from yaml", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
board:
  width: 5
  height: 4
  connect: 3
experiment:
  name: smoke
  games: 2
agents:
  - id: 1
    kind: random
    seed: 9
  - id: 2
    name: searcher
    depth: 3
matchups:
  - [2, 1]
redis:
  enabled: true
  host: cache
`)

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", got.LogLevel)
		require.Equal(t, Board{Width: 5, Height: 4, Connect: 3}, got.Board)
		require.Equal(t, "smoke", got.Experiment.Name)
		require.Equal(t, 2, got.Experiment.Games)
		require.Equal(t, 4, got.Experiment.Goroutines, "Missing fields should take defaults")
		require.Len(t, got.Agents, 2)
		require.Equal(t, uint64(9), got.Agents[0].Seed)
		require.Equal(t, [][]int{{2, 1}}, got.Matchups)
		require.Equal(t, "cache:6379", got.Redis.Addr())

		agent, ok := got.AgentByID(2)
		require.True(t, ok)
		require.Equal(t, 3, agent.Depth)
	})

	t.Run("overriding the file with the environment", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("BOARD_WIDTH", "9")

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "warn", got.LogLevel)
		require.Equal(t, 9, got.Board.Width)
	})

	t.Run("reading the environment only", func(t *testing.T) {
		got, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Board{Width: 7, Height: 6, Connect: 4}, got.Board)
		require.Equal(t, "selfplay", got.Experiment.Name)
		require.False(t, got.Redis.Enabled)
	})

	t.Run("rejecting a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("rejecting matchups with unknown agents", func(t *testing.T) {
		path := writeConfig(t, `
agents:
  - id: 1
matchups:
  - [1, 2]
`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejecting duplicate agent ids", func(t *testing.T) {
		path := writeConfig(t, `
agents:
  - id: 1
  - id: 1
`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
