package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"connectn/config"
	"connectn/experiments"
	"connectn/experiments/store"
	"connectn/game"
	"connectn/meta"
	"connectn/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "Path to the YAML config, empty to read the environment only")
	position := flag.String("position", "", "Position to analyse, rows top to bottom separated by '/' (e.g. .../.1./.21)")
	depth := flag.Int("depth", meta.DEPTH, "Search depth used with -position")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	initLogger(conf)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if *position != "" {
		err = analyse(conf, *position, *depth)
	} else {
		err = runExperiment(ctx, conf)
	}
	if err != nil {
		panic(err)
	}
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

// analyse prints the decision for the player to move in position.
func analyse(conf *config.Config, position string, depth int) error {
	board, err := game.ParseBoard(conf.Board.Connect, strings.Split(position, "/")...)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}

	result := searcher.NewAlphaBeta(depth, searcher.WithMetrics()).Decide(board)

	fmt.Println(board)
	log.Info().
		Int("player", int(board.Player())).
		Str("outcome", board.Outcome().String()).
		Int("depth", depth).
		Stringer("move", result.Move).
		Int("score", result.Score).
		Int("nodes", result.Metrics.Nodes).
		Int("cutoffs", result.Metrics.Cutoffs).
		Dur("duration", result.Metrics.Duration).
		Msg("analysed position")
	return nil
}

func runExperiment(ctx context.Context, conf *config.Config) error {
	var options []experiments.Option
	if conf.Redis.Enabled {
		client, err := store.Connect(ctx, conf.Redis.Addr())
		if err != nil {
			return err
		}
		defer client.Close()
		options = append(options, experiments.WithStore(store.NewRecordStore(client)))
		log.Info().Msgf("storing records in redis at %s", conf.Redis.Addr())
	}

	_, err := experiments.Run(ctx, conf, options...)
	return err
}
