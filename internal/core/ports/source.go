package ports

import (
	"context"

	"go.trai.ch/dbfetch/internal/core/domain"
)

// DataSource defines the interface for executing a query against the load
// database.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type DataSource interface {
	// Fetch executes the query against the given connection and returns the
	// materialized result. The first indexColumns result columns become the
	// dataset index.
	Fetch(ctx context.Context, conn domain.Connection, q *domain.Query, indexColumns int) (*domain.Dataset, error)
}
