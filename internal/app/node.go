package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dbfetch/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dbfetch/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/dbfetch/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dbfetch/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/dbfetch/internal/adapters/sqldb"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dbfetch/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/dbfetch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.QueryStoreNodeID,
			fs.DatadumpNodeID,
			cache.NodeID,
			sqldb.SourceNodeID,
			sqldb.WriterNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			fs.QueryStoreNodeID,
			fs.DatadumpNodeID,
			cache.NodeID,
			sqldb.SourceNodeID,
			sqldb.WriterNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	queries, err := graft.Dep[ports.QueryStore](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.DataSource](ctx)
	if err != nil {
		return nil, err
	}

	resultCache, err := graft.Dep[ports.ResultCache](ctx)
	if err != nil {
		return nil, err
	}

	datadump, err := graft.Dep[ports.Datadump](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StoreWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, queries, source, resultCache, datadump, store, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	queries, err := graft.Dep[ports.QueryStore](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.DataSource](ctx)
	if err != nil {
		return nil, err
	}

	resultCache, err := graft.Dep[ports.ResultCache](ctx)
	if err != nil {
		return nil, err
	}

	datadump, err := graft.Dep[ports.Datadump](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StoreWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		Queries:      queries,
		Source:       source,
		Cache:        resultCache,
		Datadump:     datadump,
		Store:        store,
		Telemetry:    telemetry,
	}, nil
}
