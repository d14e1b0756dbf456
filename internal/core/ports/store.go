package ports

import (
	"context"

	"go.trai.ch/dbfetch/internal/core/domain"
)

// StoreWriter defines the interface for exporting a dataset to the store.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StoreWriter interface {
	// Write exports the dataset to the store's table, honoring the store's
	// WriteMode when the table already exists.
	Write(ctx context.Context, store domain.Store, ds *domain.Dataset) error
}
