// Package cache implements the calendar-day-scoped result cache as flat JSON
// files.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

const dayFormat = "20060102"

var _ ports.ResultCache = (*Store)(nil)

// Store implements ports.ResultCache. One file holds one query's result for
// one UTC calendar day; the file name carries the day and the query
// fingerprint, so a new day or an edited query never hits.
type Store struct {
	clock  clockwork.Clock
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(log ports.Logger, clock clockwork.Clock) *Store {
	return &Store{
		clock:  clock,
		logger: log,
	}
}

// snapshot is the on-disk representation of a cached dataset. Column kinds
// are stored so values survive the JSON roundtrip with their types.
type snapshot struct {
	Query        string           `json:"query"`
	Fingerprint  string           `json:"fingerprint"`
	FetchedAt    time.Time        `json:"fetched_at"`
	IndexColumns int              `json:"index_columns"`
	Columns      []snapshotColumn `json:"columns"`
	Rows         [][]any          `json:"rows"`
}

type snapshotColumn struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Get returns the dataset cached for the query on the current calendar day.
func (s *Store) Get(dir string, q *domain.Query) (*domain.Dataset, bool, error) {
	path := filepath.Join(dir, s.filename(q))

	data, err := os.ReadFile(path) //nolint:gosec // path derives from user config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", path)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, "failed to decode cache file"), "path", path)
	}

	ds, err := snap.dataset()
	if err != nil {
		return nil, false, zerr.With(err, "path", path)
	}
	return ds, true, nil
}

// Put stores the dataset for the query under the current calendar day and
// sweeps stale entries for the same query name.
func (s *Store) Put(dir string, q *domain.Query, ds *domain.Dataset) error {
	current := s.filename(q)

	if _, err := s.sweep(dir, q.Name, current); err != nil {
		return err
	}

	snap := newSnapshot(q, ds, s.clock.Now().UTC())
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode cache snapshot")
	}

	path := filepath.Join(dir, current)
	//nolint:gosec // cache files contain no secrets
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache file"), "path", path)
	}
	return nil
}

// Clear removes all cached entries for the query name.
func (s *Store) Clear(dir string, name string) (int, error) {
	return s.sweep(dir, name, "")
}

// sweep removes every cache file for the query name except keep. It returns
// the number of files removed.
func (s *Store) sweep(dir, name, keep string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to read cache directory"), "dir", dir)
	}

	prefix := name + "_cache_"
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) || entry.Name() == keep {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, zerr.With(zerr.Wrap(err, "failed to remove stale cache file"), "path", path)
		}
		s.logger.Debug(fmt.Sprintf("removed stale cache file %s", entry.Name()))
		removed++
	}
	return removed, nil
}

func (s *Store) filename(q *domain.Query) string {
	day := s.clock.Now().UTC().Format(dayFormat)
	return fmt.Sprintf("%s_cache_%s_%s.json", q.Name, day, q.Fingerprint)
}

func newSnapshot(q *domain.Query, ds *domain.Dataset, fetchedAt time.Time) *snapshot {
	kinds := ds.ColumnKinds()
	columns := make([]snapshotColumn, len(ds.Columns))
	for i, name := range ds.Columns {
		columns[i] = snapshotColumn{Name: name, Kind: kinds[i].String()}
	}
	return &snapshot{
		Query:        q.Name,
		Fingerprint:  q.Fingerprint,
		FetchedAt:    fetchedAt,
		IndexColumns: ds.IndexColumns,
		Columns:      columns,
		Rows:         ds.Rows,
	}
}

// dataset rebuilds the dataset, coercing JSON-decoded values back to the
// recorded column kinds.
func (snap *snapshot) dataset() (*domain.Dataset, error) {
	names := make([]string, len(snap.Columns))
	for i, c := range snap.Columns {
		names[i] = c.Name
	}

	ds, err := domain.NewDataset(names, snap.IndexColumns)
	if err != nil {
		return nil, err
	}

	for _, row := range snap.Rows {
		if len(row) != len(snap.Columns) {
			return nil, zerr.With(domain.ErrRowLengthMismatch, "row_length", len(row))
		}
		decoded := make([]any, len(row))
		for i, v := range row {
			dv, err := decodeValue(snap.Columns[i].Kind, v)
			if err != nil {
				return nil, zerr.With(err, "column", snap.Columns[i].Name)
			}
			decoded[i] = dv
		}
		if err := ds.AppendRow(decoded); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func decodeValue(kind string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch kind {
	case "int":
		f, ok := v.(float64)
		if !ok {
			return nil, zerr.With(zerr.New("unexpected cache value type"), "kind", kind)
		}
		return int64(f), nil
	case "float":
		f, ok := v.(float64)
		if !ok {
			return nil, zerr.With(zerr.New("unexpected cache value type"), "kind", kind)
		}
		return f, nil
	case "bool":
		b, ok := v.(bool)
		if !ok {
			return nil, zerr.With(zerr.New("unexpected cache value type"), "kind", kind)
		}
		return b, nil
	case "time":
		s, ok := v.(string)
		if !ok {
			return nil, zerr.With(zerr.New("unexpected cache value type"), "kind", kind)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse cached timestamp")
		}
		return t, nil
	default:
		s, ok := v.(string)
		if !ok {
			return domain.FormatValue(v), nil
		}
		return s, nil
	}
}
