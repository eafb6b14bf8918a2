package experiments

import (
	"context"
	"fmt"

	"connectn/agent"
	"connectn/config"
	"connectn/engine"
	"connectn/experiments/metrics"
	"connectn/experiments/store"
	"connectn/game"
	"connectn/meta"
	"connectn/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(r *runner)

// WithStore also pushes every record to s.
func WithStore(s store.RecordStore) Option {
	return func(r *runner) {
		r.store = s
	}
}

// MatchupResult tallies the games of one matchup from the first agent's side.
// Games stopped by the turn limit count as draws.
type MatchupResult struct {
	Agent1 int
	Agent2 int
	Wins   int
	Losses int
	Draws  int
}

type runner struct {
	cfg   *config.Config
	store store.RecordStore
}

type scheduledGame struct {
	id      int
	matchup int
	agent1  config.Agent
	agent2  config.Agent
}

type played struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays cfg.Experiment.Games games for every configured matchup, writes the
// records as CSV under the output directory and returns per matchup tallies.
func Run(ctx context.Context, cfg *config.Config, options ...Option) ([]MatchupResult, error) {
	r := &runner{cfg: cfg}
	for _, option := range options {
		option(r)
	}

	name := cfg.Experiment.Name
	configs, err := r.agentConfigs()
	if err != nil {
		return nil, err
	}
	games, err := r.schedule()
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s experiment with %d games over %d matchups...", name, len(games), len(cfg.Matchups))

	results := make([]played, len(games))
	g, ctx := errgroup.WithContext(ctx)
	goroutines := cfg.Experiment.Goroutines
	if goroutines <= 0 {
		goroutines = meta.GO_ROUTINES
	}
	g.SetLimit(goroutines)

	for i, scheduled := range games {
		i, scheduled := i, scheduled
		g.Go(func() error {
			result, err := r.play(ctx, scheduled)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s experiment: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	var moveRecords []metrics.MoveRecord
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		moveRecords = append(moveRecords, result.moves...)
	}
	if err = r.write(configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}

	return r.tally(games, results), nil
}

func (r *runner) agentConfigs() ([]metrics.AgentConfig, error) {
	configs := make([]metrics.AgentConfig, 0, len(r.cfg.Agents))
	for _, cfg := range r.cfg.Agents {
		a, err := agent.New(cfg)
		if err != nil {
			return nil, err
		}
		kind := cfg.Kind
		if kind == "" {
			kind = agent.KindAlphaBeta
		}
		configs = append(configs, metrics.AgentConfig{
			ID:      cfg.ID,
			Name:    a.Name(),
			Kind:    kind,
			Depth:   cfg.Depth,
			Seed:    cfg.Seed,
			Pruning: kind == agent.KindAlphaBeta && !cfg.NoPruning,
		})
	}
	return configs, nil
}

func (r *runner) schedule() ([]scheduledGame, error) {
	var games []scheduledGame
	for mi, matchup := range r.cfg.Matchups {
		agent1, ok1 := r.cfg.AgentByID(matchup[0])
		agent2, ok2 := r.cfg.AgentByID(matchup[1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: matchup %d references an unknown agent", config.ErrInvalidConfig, mi)
		}
		for i := 0; i < r.cfg.Experiment.Games; i++ {
			games = append(games, scheduledGame{
				id:      len(games) + 1,
				matchup: mi,
				agent1:  agent1,
				agent2:  agent2,
			})
		}
	}
	return games, nil
}

// play runs one game with fresh agents. Random agents are reseeded per game so
// the games of a matchup differ.
func (r *runner) play(ctx context.Context, scheduled scheduledGame) (played, error) {
	agents := make([]agent.Agent, 0, 2)
	for _, cfg := range []config.Agent{scheduled.agent1, scheduled.agent2} {
		cfg.Seed += uint64(scheduled.id)
		a, err := agent.New(cfg)
		if err != nil {
			return played{}, err
		}
		agents = append(agents, a)
	}

	board := r.cfg.Board
	e := engine.LocalEngine(game.NewBoard(board.Width, board.Height, board.Connect), agents,
		engine.WithMaxTurns(r.cfg.Experiment.MaxTurns))

	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return played{}, fmt.Errorf("game %d: %w", scheduled.id, err)
	}

	result := played{
		record: metrics.GameRecord{
			ID:         scheduled.id,
			Agent1:     scheduled.agent1.ID,
			Agent2:     scheduled.agent2.ID,
			GameMetric: gameMetric,
		},
	}
	if r.cfg.Experiment.Metrics {
		result.moves = utils.Map(moveMetrics, func(mm metrics.MoveMetric) metrics.MoveRecord {
			return metrics.MoveRecord{Game: scheduled.id, MoveMetric: mm}
		})
	}

	log.Info().Msgf("completed game %d (matchup %d) between %s and %s: %s after %d moves",
		scheduled.id, scheduled.matchup+1, agents[0].Name(), agents[1].Name(), gameMetric.Outcome, gameMetric.TotalMoves)

	if r.store != nil {
		if err = r.store.SaveGame(ctx, r.cfg.Experiment.Name, result.record); err != nil {
			return played{}, err
		}
		if err = r.store.SaveMoves(ctx, r.cfg.Experiment.Name, result.moves); err != nil {
			return played{}, err
		}
	}
	return result, nil
}

func (r *runner) write(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(r.cfg.Experiment.OutputDir, r.cfg.Experiment.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if r.cfg.Experiment.Metrics {
		if err = writer.WriteMoveRecords(moves); err != nil {
			return fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msg("stored move records")
	}
	return nil
}

func (r *runner) tally(games []scheduledGame, results []played) []MatchupResult {
	tallies := make([]MatchupResult, len(r.cfg.Matchups))
	for mi, matchup := range r.cfg.Matchups {
		tallies[mi] = MatchupResult{Agent1: matchup[0], Agent2: matchup[1]}
	}

	for i, scheduled := range games {
		tally := &tallies[scheduled.matchup]
		switch game.Player(results[i].record.Winner) {
		case game.Player1:
			tally.Wins++
		case game.Player2:
			tally.Losses++
		default:
			tally.Draws++
		}
	}

	for _, tally := range tallies {
		log.Info().
			Int("agent1", tally.Agent1).
			Int("agent2", tally.Agent2).
			Int("wins", tally.Wins).
			Int("losses", tally.Losses).
			Int("draws", tally.Draws).
			Msg("matchup result")
	}
	return tallies
}
