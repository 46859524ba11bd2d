package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrInvalidMove    = errors.New("invalid move")
	ErrMalformedInput = errors.New("input is not a number")
	ErrOutOfRange     = errors.New("position is out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
)

// Message - returns the text shown to the player for a rejected move.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return "Invalid input, please enter a number."
	case errors.Is(err, ErrOutOfRange):
		return "Position out of range (0-8)."
	case errors.Is(err, ErrCellOccupied):
		return "Field is already occupied."
	case errors.Is(err, ErrGameFinished):
		return "The game is already over."
	default:
		return "Something went wrong, please try again."
	}
}
