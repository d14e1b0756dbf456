package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DataSource = (*Source)(nil)

// Source implements ports.DataSource against the MySQL load database.
type Source struct {
	logger ports.Logger
	policy RetryPolicy
	open   func(driverName, dsn string) (*sql.DB, error)
}

// NewSource creates a new Source with the default retry policy.
func NewSource(log ports.Logger) *Source {
	return &Source{
		logger: log,
		policy: defaultRetryPolicy(),
		open:   sql.Open,
	}
}

// WithRetryPolicy overrides the retry policy. Used by tests to avoid the
// production wait times.
func (s *Source) WithRetryPolicy(policy RetryPolicy) *Source {
	s.policy = policy
	return s
}

// WithOpenFunc overrides how database handles are opened. Used by tests to
// inject a mocked database.
func (s *Source) WithOpenFunc(open func(driverName, dsn string) (*sql.DB, error)) *Source {
	s.open = open
	return s
}

// Fetch executes the query and materializes the result. The whole load is
// retried with exponential backoff, matching the reference client.
func (s *Source) Fetch(ctx context.Context, conn domain.Connection, q *domain.Query, indexColumns int) (*domain.Dataset, error) {
	s.logger.Info(fmt.Sprintf("querying %s from database", q.Name))

	var ds *domain.Dataset
	err := retryOp(ctx, s.logger, s.policy, "query "+q.Name, func() error {
		var err error
		ds, err = s.fetchOnce(ctx, conn, q, indexColumns)
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load data"), "query", q.Name)
	}

	return ds, nil
}

func (s *Source) fetchOnce(ctx context.Context, conn domain.Connection, q *domain.Query, indexColumns int) (*domain.Dataset, error) {
	db, err := s.open("mysql", mysqlDSN(conn, ""))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open database")
	}
	defer db.Close() //nolint:errcheck // Best effort close in defer

	rows, err := db.QueryContext(ctx, q.Text)
	if err != nil {
		return nil, zerr.Wrap(err, "query execution failed")
	}
	defer rows.Close() //nolint:errcheck // Best effort close in defer

	return scanRows(rows, indexColumns)
}
