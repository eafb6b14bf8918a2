package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"connectn/experiments/metrics"

	"github.com/redis/go-redis/v9"
)

var ErrExperimentNotFound = errors.New("experiment not found")

// RecordStore keeps the records of named experiments.
type RecordStore interface {
	SaveGame(ctx context.Context, experiment string, record metrics.GameRecord) error
	SaveMoves(ctx context.Context, experiment string, records []metrics.MoveRecord) error
	Games(ctx context.Context, experiment string) ([]metrics.GameRecord, error)
	Moves(ctx context.Context, experiment string, game int) ([]metrics.MoveRecord, error)
}

type redisStore struct {
	client *redis.Client
}

func NewRecordStore(client *redis.Client) RecordStore {
	return &redisStore{
		client: client,
	}
}

// Connect opens a client to the server at addr and checks that it answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func gamesKey(experiment string) string {
	return "experiment:" + experiment + ":games"
}

func movesKey(experiment string, game int) string {
	return fmt.Sprintf("experiment:%s:game:%d:moves", experiment, game)
}

func (that *redisStore) SaveGame(ctx context.Context, experiment string, record metrics.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	err = that.client.RPush(ctx, gamesKey(experiment), recordJSON).Err()
	if err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}
	return nil
}

// SaveMoves appends records to the move list of their game. All records must
// belong to the same game.
func (that *redisStore) SaveMoves(ctx context.Context, experiment string, records []metrics.MoveRecord) error {
	if len(records) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(records))
	for _, record := range records {
		if record.Game != records[0].Game {
			return fmt.Errorf("move records span games %d and %d", records[0].Game, record.Game)
		}
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("could not marshal move record: %w", err)
		}
		values = append(values, recordJSON)
	}

	err := that.client.RPush(ctx, movesKey(experiment, records[0].Game), values...).Err()
	if err != nil {
		return fmt.Errorf("failed to save move records: %w", err)
	}
	return nil
}

func (that *redisStore) Games(ctx context.Context, experiment string) ([]metrics.GameRecord, error) {
	return load[metrics.GameRecord](ctx, that.client, gamesKey(experiment))
}

func (that *redisStore) Moves(ctx context.Context, experiment string, game int) ([]metrics.MoveRecord, error) {
	return load[metrics.MoveRecord](ctx, that.client, movesKey(experiment, game))
}

func load[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	values, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrExperimentNotFound, key)
	}

	records := make([]T, len(values))
	for i, value := range values {
		if err = json.Unmarshal([]byte(value), &records[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
	}
	return records, nil
}
