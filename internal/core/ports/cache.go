package ports

import "go.trai.ch/dbfetch/internal/core/domain"

// ResultCache defines the interface for the calendar-day-scoped result cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResultCache interface {
	// Get returns the dataset cached for the query on the current calendar
	// day. The second return value reports whether a valid entry was found;
	// a missing entry is not an error.
	Get(dir string, q *domain.Query) (*domain.Dataset, bool, error)

	// Put stores the dataset for the query under the current calendar day
	// and sweeps stale entries for the same query name.
	Put(dir string, q *domain.Query, ds *domain.Dataset) error

	// Clear removes all cached entries for the query name and returns the
	// number of files removed.
	Clear(dir string, name string) (int, error)
}
