package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	movePrompt   = "Player %s, choose a position (0-8): "
	replayPrompt = "Play again? (y/n): "
)

type scoreRepo interface {
	Record(ctx context.Context, sessionID string, outcome entity.Outcome) error
	Get(ctx context.Context, sessionID string) (*entity.Score, error)
}

type terminal interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Println(text string) error
	Clear() error
	Writer() io.Writer
}

// Session - the interactive loop: one game at a time, replayed until the players stop.
type Session struct {
	logger *slog.Logger

	id       string
	terminal terminal
	scores   scoreRepo
	game     *entity.Game
}

func NewSession(logger *slog.Logger, terminal terminal, scores scoreRepo) *Session {
	id := uuid.NewString()

	return &Session{
		logger: logger.With("component", "session", "session_id", id),

		id:       id,
		terminal: terminal,
		scores:   scores,
		game:     entity.NewGame(),
	}
}

func (that *Session) ID() string {
	return that.id
}

// Play - runs games until the players decline a replay, input ends or ctx is canceled.
func (that *Session) Play(ctx context.Context) error {
	for {
		outcome, err := that.playRound(ctx)
		if isSessionEnd(err) {
			that.logger.Info("session ended before the game finished", "game_id", that.game.ID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		that.finishRound(ctx, outcome)

		answer, err := that.terminal.Ask(ctx, replayPrompt)
		if isSessionEnd(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read replay answer: %w", err)
		}

		if !console.ParseReplay(answer) {
			that.logger.Info("session finished")
			return nil
		}

		that.game.Reset()
		that.logger.Debug("new game started", "game_id", that.game.ID)
	}
}

func (that *Session) playRound(ctx context.Context) (entity.Outcome, error) {
	for {
		if err := that.show(); err != nil {
			return entity.Outcome{}, err
		}

		cell, err := that.readMove(ctx)
		if err != nil {
			return entity.Outcome{}, err
		}

		if err = that.game.ApplyMove(cell); err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to apply move: %w", err)
		}

		that.logger.Debug("move applied", "game_id", that.game.ID, "player", that.game.Turn, "cell", cell, "filled", that.game.Board.Filled())

		if winner, ok := that.game.Winner(); ok {
			return entity.Outcome{Status: entity.StatusWon, Winner: winner}, that.announce(fmt.Sprintf("Player %s has won", winner))
		}

		if that.game.IsDraw() {
			return entity.Outcome{Status: entity.StatusDraw}, that.announce("It's a draw!")
		}

		that.game.SwitchPlayer()
	}
}

// readMove - prompts the current player until the answer is a playable cell.
func (that *Session) readMove(ctx context.Context) (int, error) {
	for {
		answer, err := that.terminal.Ask(ctx, fmt.Sprintf(movePrompt, that.game.Turn))
		if err != nil {
			return 0, err
		}

		input := console.ParseMove(answer)
		if input.OK() {
			input.Err = that.game.ValidateMove(input.Position)
		}

		if input.OK() {
			return input.Position, nil
		}

		that.logger.Debug("move rejected", "game_id", that.game.ID, "input", answer, "error", input.Err)

		if err = that.terminal.Println(apperror.Message(input.Err)); err != nil {
			return 0, err
		}
	}
}

func (that *Session) finishRound(ctx context.Context, outcome entity.Outcome) {
	that.logger.Info("game finished", "game_id", that.game.ID, "status", outcome.Status, "winner", outcome.Winner)

	if err := that.scores.Record(ctx, that.id, outcome); err != nil {
		that.logger.Error("could not record outcome", "error", err)
		return
	}

	score, err := that.scores.Get(ctx, that.id)
	if err != nil {
		that.logger.Error("could not get score", "error", err)
		return
	}

	that.logger.Debug("score updated", "games", score.Games(), "x", score.X, "o", score.O, "draw", score.Draw)

	line := fmt.Sprintf("Score: X %d, O %d, draws %d", score.X, score.O, score.Draw)
	if err = that.terminal.Println(line); err != nil {
		that.logger.Error("could not print score", "error", err)
	}
}

func (that *Session) announce(message string) error {
	if err := that.show(); err != nil {
		return err
	}
	return that.terminal.Println(message)
}

func (that *Session) show() error {
	if err := that.terminal.Clear(); err != nil {
		return err
	}
	return console.RenderBoard(that.terminal.Writer(), that.game.Board)
}

func isSessionEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
