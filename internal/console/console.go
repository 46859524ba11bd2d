package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type inputLine struct {
	text string
	err  error
}

// Console - line based terminal I/O used by the game session.
type Console struct {
	in          io.Reader
	out         io.Writer
	clearScreen bool

	startReader sync.Once
	lines       chan inputLine
}

func New(in io.Reader, out io.Writer, clearScreen bool) *Console {
	return &Console{
		in:          in,
		out:         out,
		clearScreen: clearScreen,
		lines:       make(chan inputLine),
	}
}

// ReadLine - returns the next line without its newline, or io.EOF when input is exhausted.
// A blocked read returns ctx.Err() as soon as ctx is canceled.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.startReader.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// readLines - feeds lines to ReadLine one at a time, closing the channel at EOF.
func (that *Console) readLines() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- inputLine{text: scanner.Text()}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

// Ask - prints the prompt and reads the answer.
func (that *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if err := that.Print(prompt); err != nil {
		return "", err
	}
	return that.ReadLine(ctx)
}

func (that *Console) Print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (that *Console) Println(text string) error {
	return that.Print(text + "\n")
}

// Clear - wipes the terminal unless clearing is disabled.
func (that *Console) Clear() error {
	if !that.clearScreen {
		return nil
	}
	return ClearScreen(that.out)
}

func (that *Console) Writer() io.Writer {
	return that.out
}
