package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termlife/golife/board"
)

func TestLoadParsesCoordinatePairs(t *testing.T) {
	src := "(0, 0)\n(12, 3)\n(4, 27)\n"

	positions, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Position{
		{Row: 0, Col: 0},
		{Row: 12, Col: 3},
		{Row: 4, Col: 27},
	}, positions)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	src := "\n(1, 2)\n\n(3, 4)\n\n"

	positions, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Position{{Row: 1, Col: 2}, {Row: 3, Col: 4}}, positions)
}

func TestLoadRejectsMalformedLines(t *testing.T) {
	for _, src := range []string{
		"(1, 2)\nnot a coordinate\n",
		"(1 2)\n",
		"1, 2\n",
	} {
		_, err := Load(strings.NewReader(src))
		assert.Error(t, err, "source %q", src)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	require.NoError(t, os.WriteFile(path, []byte("(2, 1)\n(2, 2)\n(2, 3)\n"), 0o600))

	positions, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, positions, 3)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestApplySeedsBoard(t *testing.T) {
	b, err := board.New(5, 5)
	require.NoError(t, err)

	require.NoError(t, Apply(b, []Position{{Row: 0, Col: 0}, {Row: 4, Col: 4}}))
	assert.True(t, b.Alive(0, 0))
	assert.True(t, b.Alive(4, 4))
	assert.Equal(t, 2, b.Population())
}

func TestApplyRejectsOutOfRangePositions(t *testing.T) {
	for _, pos := range []Position{
		{Row: 5, Col: 0},
		{Row: 0, Col: 5},
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
	} {
		b, err := board.New(5, 5)
		require.NoError(t, err)

		assert.Error(t, Apply(b, []Position{{Row: 1, Col: 1}, pos}), "position %v", pos)
		assert.Zero(t, b.Population(), "a rejected seed list must not partially apply")
	}
}
