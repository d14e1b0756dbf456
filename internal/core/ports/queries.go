package ports

import "go.trai.ch/dbfetch/internal/core/domain"

// QueryStore defines the interface for resolving query files.
//
//go:generate go run go.uber.org/mock/mockgen -source=queries.go -destination=mocks/mock_queries.go -package=mocks
type QueryStore interface {
	// Get reads the query file "<name>.sql" from the directory and returns
	// the query with its content fingerprint.
	Get(dir string, name string) (*domain.Query, error)
}

// Datadump defines the interface for dumping a dataset to local files.
type Datadump interface {
	// WriteCSV writes the dataset as CSV into the directory and returns the
	// written file path.
	WriteCSV(dir string, name string, ds *domain.Dataset) (string, error)
}
