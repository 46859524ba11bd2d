package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveInput - result of parsing a move token. Err is nil when Position is usable.
type MoveInput struct {
	Position int
	Err      error
}

func (that MoveInput) OK() bool {
	return that.Err == nil
}

// ParseMove - turns a raw token into a board position. Occupancy is checked by the game.
func ParseMove(token string) MoveInput {
	token = strings.TrimSpace(token)

	position, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) {
		return MoveInput{Err: fmt.Errorf("%w: %s", apperror.ErrOutOfRange, token)}
	}
	if err != nil {
		return MoveInput{Err: fmt.Errorf("%w: %q", apperror.ErrMalformedInput, token)}
	}

	if position < 0 || position >= entity.BoardSize {
		return MoveInput{Position: position, Err: fmt.Errorf("%w: %d", apperror.ErrOutOfRange, position)}
	}

	return MoveInput{Position: position}
}

// ParseReplay - "y" or "yes" in any case means play again.
func ParseReplay(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
