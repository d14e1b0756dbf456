// Package fs implements filesystem adapters: query file resolution and the
// datadump writer.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

const queryFileExt = ".sql"

var _ ports.QueryStore = (*QueryStore)(nil)

// QueryStore resolves query files from the query directory.
type QueryStore struct{}

// NewQueryStore creates a new QueryStore.
func NewQueryStore() *QueryStore {
	return &QueryStore{}
}

// Get reads "<name>.sql" from the directory. The fingerprint is the XXHash
// of the file content, so an edited query yields a new fingerprint.
func (s *QueryStore) Get(dir string, name string) (*domain.Query, error) {
	path := filepath.Join(dir, name+queryFileExt)

	data, err := os.ReadFile(path) //nolint:gosec // path derives from user config
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read query file"), "path", path)
	}

	return &domain.Query{
		Name:        name,
		Text:        string(data),
		Fingerprint: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}, nil
}
