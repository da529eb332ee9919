// Package term owns the terminal: raw mode, the alternate screen, frame
// drawing, and timed key polling. It is the only package that writes to the
// tty while the simulation runs.
package term

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
	xterm "golang.org/x/term"

	"github.com/termlife/golife/board"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J"
)

// Screen is an open terminal in raw mode on the alternate screen buffer.
// Output is buffered; callers draw a full frame and then Flush once.
type Screen struct {
	in   *os.File
	out  *bufio.Writer
	prev *xterm.State
	rows int
	cols int
}

// Open puts stdin into raw mode, switches to the alternate screen, hides the
// cursor, and records the terminal size. Close must be called to undo all of
// it, including on error paths after a successful Open.
func Open() (*Screen, error) {
	inFd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(inFd) {
		return nil, errors.New("[Open] stdin is not a terminal")
	}

	prev, err := xterm.MakeRaw(inFd)
	if err != nil {
		return nil, errors.Wrap(err, "[Open] failed to enter raw mode")
	}

	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		_ = xterm.Restore(inFd, prev)
		return nil, errors.Wrap(err, "[Open] failed to read terminal size")
	}

	s := &Screen{
		in:   os.Stdin,
		out:  bufio.NewWriter(os.Stdout),
		prev: prev,
		rows: rows,
		cols: cols,
	}
	s.out.WriteString(enterAltScreen)
	s.out.WriteString(hideCursor)
	if err = s.out.Flush(); err != nil {
		_ = xterm.Restore(inFd, prev)
		return nil, errors.Wrap(err, "[Open] failed to initialize screen")
	}
	return s, nil
}

// Close leaves the alternate screen, restores the cursor, and returns the
// terminal to its pre-Open state.
func (s *Screen) Close() error {
	s.out.WriteString(showCursor)
	s.out.WriteString(leaveAltScreen)
	if err := s.out.Flush(); err != nil {
		return errors.Wrap(err, "[Close] failed to reset screen")
	}
	if err := xterm.Restore(int(s.in.Fd()), s.prev); err != nil {
		return errors.Wrap(err, "[Close] failed to restore terminal state")
	}
	return nil
}

// Rows returns the terminal height in character cells.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the terminal width in character cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Clear erases the pending frame.
func (s *Screen) Clear() {
	s.out.WriteString(clearScreen)
}

// DrawBoard adds one sprite per live cell to the pending frame.
func (s *Screen) DrawBoard(b *board.Board) {
	renderBoard(s.out, b)
}

// DrawStatus adds the status line on the bottom terminal row.
func (s *Screen) DrawStatus(status string) {
	renderStatus(s.out, s.rows, s.cols, status)
}

// Flush writes the pending frame to the terminal.
func (s *Screen) Flush() error {
	return errors.Wrap(s.out.Flush(), "[Flush] failed to write frame")
}
