package sqldb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dbfetch/internal/adapters/logger"
	"go.trai.ch/dbfetch/internal/core/ports"

	// SQL drivers
	_ "github.com/go-sql-driver/mysql" // mysql
	_ "github.com/lib/pq"              // postgres
)

const (
	// SourceNodeID is the unique identifier for the data source node.
	SourceNodeID graft.ID = "adapter.data_source"
	// WriterNodeID is the unique identifier for the store writer node.
	WriterNodeID graft.ID = "adapter.store_writer"
)

func init() {
	graft.Register(graft.Node[ports.DataSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DataSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(log), nil
		},
	})

	graft.Register(graft.Node[ports.StoreWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.StoreWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
