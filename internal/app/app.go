// Package app implements the application layer for dbfetch.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	queries      ports.QueryStore
	source       ports.DataSource
	cache        ports.ResultCache
	datadump     ports.Datadump
	store        ports.StoreWriter
	logger       ports.Logger
	telemetry    ports.Telemetry

	out io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	queries ports.QueryStore,
	source ports.DataSource,
	cache ports.ResultCache,
	datadump ports.Datadump,
	store ports.StoreWriter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		queries:      queries,
		source:       source,
		cache:        cache,
		datadump:     datadump,
		store:        store,
		logger:       logger,
		telemetry:    telemetry,
		out:          os.Stdout,
	}
}

// WithOutput redirects the result preview. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions holds the options for a single run.
type RunOptions struct {
	// ConfigPath is the path of the project configuration file.
	ConfigPath string
	// NoCache bypasses the cache read and forces a database query.
	NoCache bool
}

// Run loads the configured query result and hands it to the configured
// outputs: preview, CSV datadump and store export.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	job, q, err := a.prepare(opts.ConfigPath)
	if err != nil {
		return err
	}

	ds, err := a.loadDataset(ctx, job, q, opts.NoCache)
	if err != nil {
		return err
	}

	if err := renderPreview(a.out, q.Name, ds); err != nil {
		return zerr.Wrap(err, "failed to render preview")
	}

	return a.deliver(ctx, job, q, ds)
}

// CleanOptions holds the options for the clean operation.
type CleanOptions struct {
	// ConfigPath is the path of the project configuration file.
	ConfigPath string
}

// Clean removes all cached results for the configured query.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	job, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	removed, err := a.cache.Clear(job.Directories.CacheDir, job.QueryName)
	if err != nil {
		return zerr.Wrap(err, "failed to clean cache")
	}

	a.logger.Info(fmt.Sprintf("removed %d cache files for %s", removed, job.QueryName))
	return nil
}

// ExportOptions holds the options for the export operation.
type ExportOptions struct {
	// ConfigPath is the path of the project configuration file.
	ConfigPath string
}

// Export writes the query result to the configured store without the
// preview and datadump steps. A cached result from the current day is
// reused, otherwise the database is queried.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	job, q, err := a.prepare(opts.ConfigPath)
	if err != nil {
		return err
	}

	if !job.HasStore() {
		return zerr.With(domain.ErrNoStoreConfigured, "query", q.Name)
	}

	ds, err := a.loadDataset(ctx, job, q, false)
	if err != nil {
		return err
	}

	if err := a.store.Write(ctx, *job.Store, ds); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("exported %s to table %s", q.Name, job.Store.Table))
	return nil
}

func (a *App) prepare(configPath string) (*domain.Job, *domain.Query, error) {
	job, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	q, err := a.queries.Get(job.Directories.QueryDir, job.QueryName)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to resolve query")
	}

	return job, q, nil
}

// loadDataset returns the dataset for the query, served from the cache when
// it holds an entry written on the current calendar day, otherwise freshly
// queried from the database.
func (a *App) loadDataset(ctx context.Context, job *domain.Job, q *domain.Query, noCache bool) (*domain.Dataset, error) {
	ctx, vertex := a.telemetry.Record(ctx, "query "+q.Name)

	if job.UseCache && !noCache {
		ds, ok, err := a.cache.Get(job.Directories.CacheDir, q)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("cache read failed, querying database: %v", err))
		}
		if ok {
			a.logger.Info(fmt.Sprintf("loading %s from cache", q.Name))
			vertex.Cached()
			vertex.Complete(nil)
			return ds, nil
		}
	}

	ds, err := a.source.Fetch(ctx, job.Load, q, job.IndexColumns)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	// Stale files are swept after every fresh query; only the write is
	// gated on use_cache. A fetch failure already aborted the run; a cache
	// housekeeping failure only costs the next run a query.
	if job.UseCache {
		if err := a.cache.Put(job.Directories.CacheDir, q, ds); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to write cache: %v", err))
		}
	} else {
		if _, err := a.cache.Clear(job.Directories.CacheDir, q.Name); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to sweep stale cache files: %v", err))
		}
	}

	vertex.Complete(nil)
	return ds, nil
}

// deliver runs the configured outputs. Datadump and store export are
// independent and run concurrently.
func (a *App) deliver(ctx context.Context, job *domain.Job, q *domain.Query, ds *domain.Dataset) error {
	g, ctx := errgroup.WithContext(ctx)

	if job.DumpCSV {
		g.Go(func() error {
			path, err := a.datadump.WriteCSV(job.Directories.DatadumpDir, q.Name, ds)
			if err != nil {
				return zerr.Wrap(err, "failed to write datadump")
			}
			a.logger.Info("wrote datadump to " + path)
			return nil
		})
	}

	if job.HasStore() {
		g.Go(func() error {
			if err := a.store.Write(ctx, *job.Store, ds); err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("exported %s to table %s", q.Name, job.Store.Table))
			return nil
		})
	} else {
		a.logger.Debug("no store configured, skipping export")
	}

	return g.Wait()
}
