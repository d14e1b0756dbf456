package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dbfetch/internal/adapters/fs"
	"go.trai.ch/dbfetch/internal/core/domain"
)

func TestQueryStore_Get(t *testing.T) {
	tmpDir := t.TempDir()
	text := "SELECT id, name FROM students;\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "students.sql"), []byte(text), 0o600))

	q, err := fs.NewQueryStore().Get(tmpDir, "students")
	require.NoError(t, err)

	assert.Equal(t, "students", q.Name)
	assert.Equal(t, text, q.Text)
	assert.Len(t, q.Fingerprint, 16)
}

func TestQueryStore_FingerprintTracksContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "q.sql")
	store := fs.NewQueryStore()

	require.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0o600))
	first, err := store.Get(tmpDir, "q")
	require.NoError(t, err)

	again, err := store.Get(tmpDir, "q")
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, again.Fingerprint)

	require.NoError(t, os.WriteFile(path, []byte("SELECT 2"), 0o600))
	edited, err := store.Get(tmpDir, "q")
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, edited.Fingerprint)
}

func TestQueryStore_MissingFile(t *testing.T) {
	_, err := fs.NewQueryStore().Get(t.TempDir(), "absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read query file")
}

func TestDatadump_WriteCSV(t *testing.T) {
	tmpDir := t.TempDir()

	ds, err := domain.NewDataset([]string{"id", "name", "seen"}, 1)
	require.NoError(t, err)
	seen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, ds.AppendRow([]any{int64(1), "ada", seen}))
	require.NoError(t, ds.AppendRow([]any{int64(2), nil, nil}))

	path, err := fs.NewDatadump().WriteCSV(tmpDir, "raw_data", ds)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "raw_data.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,seen", lines[0])
	assert.Equal(t, "1,ada,2024-03-01T12:00:00Z", lines[1])
	assert.Equal(t, "2,,", lines[2])
}

func TestDatadump_WriteCSV_OverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "raw_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	ds, err := domain.NewDataset([]string{"v"}, 0)
	require.NoError(t, err)
	require.NoError(t, ds.AppendRow([]any{int64(7)}))

	_, err = fs.NewDatadump().WriteCSV(tmpDir, "raw_data", ds)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "7")
}
