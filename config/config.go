package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board      Board      `yaml:"board"`
	Experiment Experiment `yaml:"experiment"`
	Agents     []Agent    `yaml:"agents"`
	Matchups   [][]int    `yaml:"matchups"` // Pairs of agent ids, first id plays first
	Redis      Redis      `yaml:"redis"`
}

type Board struct {
	Width   int `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
	Height  int `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	Connect int `yaml:"connect" env:"BOARD_CONNECT" env-default:"4"`
}

type Experiment struct {
	Name       string `yaml:"name" env:"EXPERIMENT_NAME" env-default:"selfplay"`
	Games      int    `yaml:"games" env:"EXPERIMENT_GAMES" env-default:"10"`
	Goroutines int    `yaml:"goroutines" env:"EXPERIMENT_GOROUTINES" env-default:"4"`
	MaxTurns   int    `yaml:"max-turns" env:"EXPERIMENT_MAX_TURNS" env-default:"0"`
	OutputDir  string `yaml:"output-dir" env:"EXPERIMENT_OUTPUT_DIR" env-default:"experiments"`
	Metrics    bool   `yaml:"metrics" env:"EXPERIMENT_METRICS" env-default:"true"`
}

// Agent describes one player. Kind is "alphabeta" (the default) or "random".
type Agent struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Depth     int    `yaml:"depth"`
	Seed      uint64 `yaml:"seed"`
	NoPruning bool   `yaml:"no-pruning"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load reads the YAML file at path, then applies environment overrides. An
// empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load for program start up.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 || c.Board.Connect <= 0 {
		return fmt.Errorf("%w: board %dx%d connect %d", ErrInvalidConfig, c.Board.Width, c.Board.Height, c.Board.Connect)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true
	}

	for i, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("%w: matchup %d has %d agents, want 2", ErrInvalidConfig, i, len(matchup))
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("%w: matchup %d references unknown agent %d", ErrInvalidConfig, i, id)
			}
		}
	}
	return nil
}

// AgentByID returns the agent with the given id.
func (c *Config) AgentByID(id int) (Agent, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return Agent{}, false
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
