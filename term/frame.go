package term

import (
	"fmt"
	"io"

	"github.com/termlife/golife/board"
)

// liveCellSprite is a reverse-video space, one character cell per live cell.
const liveCellSprite = "\x1b[7m \x1b[0m"

// renderBoard writes a sprite at the terminal position of every live cell.
// Dead cells are left to the preceding clear, so frame size scales with the
// live population rather than the board area.
func renderBoard(w io.Writer, b *board.Board) {
	for _, cell := range b.LiveCells() {
		fmt.Fprintf(w, "\x1b[%d;%dH%s", cell.Row+1, cell.Col+1, liveCellSprite)
	}
}

// renderStatus writes status on terminal row `rows`, truncated to the
// terminal width, erasing whatever the line held before.
func renderStatus(w io.Writer, rows, cols int, status string) {
	if len(status) > cols {
		status = status[:cols]
	}
	fmt.Fprintf(w, "\x1b[%d;1H\x1b[K%s", rows, status)
}
