package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dbfetch/internal/core/ports"
)

const (
	// QueryStoreNodeID is the unique identifier for the query store node.
	QueryStoreNodeID graft.ID = "adapter.query_store"
	// DatadumpNodeID is the unique identifier for the datadump node.
	DatadumpNodeID graft.ID = "adapter.datadump"
)

func init() {
	graft.Register(graft.Node[ports.QueryStore]{
		ID:        QueryStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.QueryStore, error) {
			return NewQueryStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Datadump]{
		ID:        DatadumpNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Datadump, error) {
			return NewDatadump(), nil
		},
	})
}
