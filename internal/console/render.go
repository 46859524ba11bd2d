package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	rowSeparator  = "--+---+--"
	clearSequence = "\033[H\033[2J"
)

// RenderBoard - writes the board as three rows with separators between them.
func RenderBoard(w io.Writer, board entity.Board) error {
	for i := 0; i < entity.BoardSize; i += 3 {
		if _, err := fmt.Fprintf(w, "%s | %s | %s\n", cellText(board[i]), cellText(board[i+1]), cellText(board[i+2])); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}

		if i < 6 {
			if _, err := fmt.Fprintln(w, rowSeparator); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
		}
	}

	return nil
}

// ClearScreen - moves the cursor home and wipes the terminal.
func ClearScreen(w io.Writer) error {
	if _, err := io.WriteString(w, clearSequence); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	return nil
}

func cellText(cell entity.Mark) string {
	if cell == entity.EmptyCell {
		return " "
	}
	return cell.String()
}
