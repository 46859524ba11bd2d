package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one interactive session on the given input and output.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	scores, closeScores, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeScores(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	session := usecase.NewSession(logger, console.New(in, out, !conf.NoClear), scores)

	log.Info("Starting session", "session_id", session.ID(), "score_store", conf.ScoreStore)

	if err = session.Play(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	if conf.ScoreStore != config.ScoreStoreRedis {
		return repository.NewMemoryScoreRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewRedisScoreRepository(redisStorage.Connection), redisStorage.Close, nil
}
