package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrOutcomeNotFinal = errors.New("outcome is not final")

const (
	fieldX    = "x"
	fieldO    = "o"
	fieldDraw = "draw"
)

type ScoreRepository interface {
	Record(ctx context.Context, sessionID string, outcome entity.Outcome) error
	Get(ctx context.Context, sessionID string) (*entity.Score, error)
}

// NewMemoryScoreRepository - keeps scores for the lifetime of the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]entity.Score
}

func (that *memoryScore) Record(_ context.Context, sessionID string, outcome entity.Outcome) error {
	if !outcome.IsFinished() {
		return fmt.Errorf("%w: %s", ErrOutcomeNotFinal, outcome.Status)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[sessionID]
	score.Add(outcome)
	that.scores[sessionID] = score

	return nil
}

func (that *memoryScore) Get(_ context.Context, sessionID string) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[sessionID]

	return &score, nil
}

type dbScore struct {
	client *redis.Client
}

// NewRedisScoreRepository - keeps scores in a Redis hash per session.
func NewRedisScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, sessionID string, outcome entity.Outcome) error {
	field, err := outcomeField(outcome)
	if err != nil {
		return err
	}

	if err = that.client.HIncrBy(ctx, scoreKey(sessionID), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context, sessionID string) (*entity.Score, error) {
	response, err := that.client.HGetAll(ctx, scoreKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score := &entity.Score{}
	for field, target := range map[string]*int{fieldX: &score.X, fieldO: &score.O, fieldDraw: &score.Draw} {
		value, ok := response[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("failed to parse %s count: %w", field, err)
		}
	}

	return score, nil
}

func scoreKey(sessionID string) string {
	return "score:" + sessionID
}

func outcomeField(outcome entity.Outcome) (string, error) {
	switch {
	case outcome.Status == entity.StatusDraw:
		return fieldDraw, nil
	case outcome.Status == entity.StatusWon && outcome.Winner == entity.PlayerX:
		return fieldX, nil
	case outcome.Status == entity.StatusWon && outcome.Winner == entity.PlayerO:
		return fieldO, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrOutcomeNotFinal, outcome.Status)
	}
}
