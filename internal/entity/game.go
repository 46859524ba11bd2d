package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 9

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// WinCombos - rows, columns and diagonals, in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// IsFull - reports whether no cell is empty.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Filled - number of non-empty cells.
func (that Board) Filled() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}
	return count
}

type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

type Game struct {
	ID    string `json:"id"`
	Board Board  `json:"board"`
	Turn  Mark   `json:"player_turn"`
}

func NewGame() *Game {
	return &Game{
		ID:   uuid.NewString(),
		Turn: PlayerX,
	}
}

// Reset - clears the board and gives the first move back to X.
func (that *Game) Reset() {
	that.ID = uuid.NewString()
	that.Board = Board{}
	that.Turn = PlayerX
}

// ValidateMove - checks the move against the board without touching it.
// No move is valid once the game is won or drawn.
func (that *Game) ValidateMove(cell int) error {
	if that.Outcome().IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, cell)
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

func (that *Game) IsValidMove(cell int) bool {
	return that.ValidateMove(cell) == nil
}

// ApplyMove - puts the current player's mark on the cell. The turn is not switched.
func (that *Game) ApplyMove(cell int) error {
	if err := that.ValidateMove(cell); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.Board[cell] = that.Turn

	return nil
}

// Winner - the mark of the first completed line, if any.
func (that *Game) Winner() (Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a.IsPlayer() && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

// IsDraw - the board is full and nobody completed a line.
func (that *Game) IsDraw() bool {
	if _, ok := that.Winner(); ok {
		return false
	}

	return that.Board.IsFull()
}

func (that *Game) SwitchPlayer() {
	that.Turn = that.Turn.Opponent()
}

func (that *Game) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		return Outcome{Status: StatusWon, Winner: winner}
	}

	if that.Board.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}
