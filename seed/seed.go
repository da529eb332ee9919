// Package seed loads the initial live-cell coordinates for a game board from
// a text source and applies them after bounds validation.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/termlife/golife/board"
)

// Position is one seed coordinate. The file format is "(y, x)" with y as the
// row and x as the column.
type Position struct {
	Row int
	Col int
}

// Load reads seed positions from r, one "(y, x)" pair per line. Blank lines
// are skipped; any other line that fails to parse is an error carrying its
// 1-based line number.
func Load(r io.Reader) ([]Position, error) {
	var (
		positions []Position
		scanner   = bufio.NewScanner(r)
		lineNum   int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var pos Position
		if _, err := fmt.Sscanf(line, "(%d, %d)", &pos.Row, &pos.Col); err != nil {
			return nil, errors.Wrapf(err, "[Load] malformed coordinate on line %d: %q", lineNum, line)
		}
		positions = append(positions, pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Load] failed to read seed source")
	}
	return positions, nil
}

// LoadFile reads seed positions from the file at path.
func LoadFile(path string) ([]Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open seed file: %+v", path)
	}
	defer f.Close()

	positions, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse seed file: %+v", path)
	}
	return positions, nil
}

// Apply marks every position live on b. All positions are validated against
// the board bounds before any cell is touched, so a bad seed never leaves the
// board partially seeded.
func Apply(b *board.Board, positions []Position) error {
	for _, pos := range positions {
		if pos.Row < 0 || pos.Row >= b.Rows() || pos.Col < 0 || pos.Col >= b.Cols() {
			return errors.Errorf("[Apply] seed position (%d, %d) does not fit within the %dx%d board",
				pos.Row, pos.Col, b.Rows(), b.Cols())
		}
	}
	for _, pos := range positions {
		b.Set(pos.Row, pos.Col, true)
	}
	return nil
}
