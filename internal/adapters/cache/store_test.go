package cache_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dbfetch/internal/adapters/cache"
	"go.trai.ch/dbfetch/internal/adapters/logger"
	"go.trai.ch/dbfetch/internal/core/domain"
)

func newStore(clock clockwork.Clock) *cache.Store {
	log := logger.New()
	log.SetOutput(io.Discard)
	return cache.NewStore(log, clock)
}

func testQuery() *domain.Query {
	return &domain.Query{
		Name:        "students",
		Text:        "SELECT * FROM students",
		Fingerprint: "deadbeefdeadbeef",
	}
}

func testDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset([]string{"id", "name", "score", "enrolled"}, 1)
	require.NoError(t, err)
	enrolled := time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, ds.AppendRow([]any{int64(1), "ada", 9.5, enrolled}))
	require.NoError(t, ds.AppendRow([]any{int64(2), "linus", 7.0, nil}))
	return ds
}

func TestStore_PutGet_RoundtripPreservesTypes(t *testing.T) {
	tmpDir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 14, 0, 0, 0, time.UTC))
	store := newStore(clock)
	q := testQuery()

	require.NoError(t, store.Put(tmpDir, q, testDataset(t)))

	got, ok, err := store.Get(tmpDir, q)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{"id", "name", "score", "enrolled"}, got.Columns)
	assert.Equal(t, 1, got.IndexColumns)
	require.Equal(t, 2, got.NumRows())

	assert.Equal(t, int64(1), got.Rows[0][0])
	assert.Equal(t, "ada", got.Rows[0][1])
	assert.Equal(t, 9.5, got.Rows[0][2])
	assert.Equal(t, time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC), got.Rows[0][3])
	assert.Nil(t, got.Rows[1][3])
}

func TestStore_Get_MissesOnNewDay(t *testing.T) {
	tmpDir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 23, 50, 0, 0, time.UTC))
	store := newStore(clock)
	q := testQuery()

	require.NoError(t, store.Put(tmpDir, q, testDataset(t)))

	_, ok, err := store.Get(tmpDir, q)
	require.NoError(t, err)
	assert.True(t, ok)

	// Crossing midnight UTC invalidates the entry.
	clock.Advance(time.Hour)

	_, ok, err = store.Get(tmpDir, q)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Get_MissesOnEditedQuery(t *testing.T) {
	tmpDir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC))
	store := newStore(clock)
	q := testQuery()

	require.NoError(t, store.Put(tmpDir, q, testDataset(t)))

	edited := &domain.Query{Name: q.Name, Text: "SELECT 1", Fingerprint: "0123456789abcdef"}
	_, ok, err := store.Get(tmpDir, edited)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Get_MissingDirIsAMiss(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC))
	store := newStore(clock)

	_, ok, err := store.Get(filepath.Join(t.TempDir(), "absent"), testQuery())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Get_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC))
	store := newStore(clock)
	q := testQuery()

	name := "students_cache_20241005_deadbeefdeadbeef.json"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("{not json"), 0o600))

	_, _, err := store.Get(tmpDir, q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cache file")
}

func TestStore_Put_SweepsStaleFiles(t *testing.T) {
	tmpDir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC))
	store := newStore(clock)
	q := testQuery()

	// Entries from an earlier day and an older fingerprint.
	stale := []string{
		"students_cache_20241004_deadbeefdeadbeef.json",
		"students_cache_20241005_0000000000000000.json",
	}
	for _, name := range stale {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("{}"), 0o600))
	}
	// A different query's entry must survive the sweep.
	other := "teachers_cache_20241004_deadbeefdeadbeef.json"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, other), []byte("{}"), 0o600))

	require.NoError(t, store.Put(tmpDir, q, testDataset(t)))

	for _, name := range stale {
		_, err := os.Stat(filepath.Join(tmpDir, name))
		assert.True(t, os.IsNotExist(err), "expected %s to be swept", name)
	}
	_, err := os.Stat(filepath.Join(tmpDir, other))
	assert.NoError(t, err)

	_, ok, err := store.Get(tmpDir, q)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_Clear(t *testing.T) {
	tmpDir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC))
	store := newStore(clock)
	q := testQuery()

	require.NoError(t, store.Put(tmpDir, q, testDataset(t)))

	removed, err := store.Clear(tmpDir, q.Name)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok, err := store.Get(tmpDir, q)
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err = store.Clear(tmpDir, q.Name)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
