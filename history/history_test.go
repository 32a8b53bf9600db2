package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempPath(t *testing.T) {
	t.Helper()
	old := Path
	Path = filepath.Join(t.TempDir(), "history.json")
	t.Cleanup(func() { Path = old })
}

func TestAddHistoryCreatesFileOnFirstWrite(t *testing.T) {
	withTempPath(t)

	require.NoError(t, AddHistory("2 + 2", "4"))

	data, err := os.ReadFile(Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"expression": "2 + 2"`)
	assert.Contains(t, string(data), `"result": "4"`)
}

func TestAddHistoryAppendsToExistingEntries(t *testing.T) {
	withTempPath(t)

	require.NoError(t, AddHistory("1 + 1", "2"))
	require.NoError(t, AddHistory("3 * 3", "9"))

	data, err := os.ReadFile(Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1 + 1")
	assert.Contains(t, string(data), "3 * 3")
}

func TestShowHistoryOnMissingFileDoesNotError(t *testing.T) {
	withTempPath(t)
	assert.NoError(t, ShowHistory())
}

func TestShowHistoryOnEmptyArrayDoesNotError(t *testing.T) {
	withTempPath(t)
	require.NoError(t, os.WriteFile(Path, []byte("[]"), 0644))
	assert.NoError(t, ShowHistory())
}

func TestShowHistoryOnPopulatedFileDoesNotError(t *testing.T) {
	withTempPath(t)
	require.NoError(t, AddHistory("10 / 2", "5"))
	assert.NoError(t, ShowHistory())
}
