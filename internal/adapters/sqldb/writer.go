package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

const insertBatchSize = 500

var _ ports.StoreWriter = (*Writer)(nil)

// Writer implements ports.StoreWriter by creating the target table from the
// dataset's inferred column kinds and inserting the rows in batches.
type Writer struct {
	logger ports.Logger
	policy RetryPolicy
	open   func(driverName, dsn string) (*sql.DB, error)
}

// NewWriter creates a new Writer with the default retry policy.
func NewWriter(log ports.Logger) *Writer {
	return &Writer{
		logger: log,
		policy: defaultRetryPolicy(),
		open:   sql.Open,
	}
}

// WithRetryPolicy overrides the retry policy. Used by tests to avoid the
// production wait times.
func (w *Writer) WithRetryPolicy(policy RetryPolicy) *Writer {
	w.policy = policy
	return w
}

// WithOpenFunc overrides how database handles are opened. Used by tests to
// inject a mocked database.
func (w *Writer) WithOpenFunc(open func(driverName, dsn string) (*sql.DB, error)) *Writer {
	w.open = open
	return w
}

// Write exports the dataset to the store's table.
func (w *Writer) Write(ctx context.Context, store domain.Store, ds *domain.Dataset) error {
	if ds.NumRows() == 0 {
		return zerr.With(domain.ErrEmptyDataset, "table", store.Table)
	}

	w.logger.Info(fmt.Sprintf("writing %d rows to store table %s", ds.NumRows(), store.Table))

	err := retryOp(ctx, w.logger, w.policy, "export to "+store.Table, func() error {
		return w.writeOnce(ctx, store, ds)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write data to store"), "table", store.Table)
	}
	return nil
}

func (w *Writer) writeOnce(ctx context.Context, store domain.Store, ds *domain.Dataset) error {
	driverName, dsn, err := storeDSN(store)
	if err != nil {
		return backoff.Permanent(err)
	}

	db, err := w.open(driverName, dsn)
	if err != nil {
		return zerr.Wrap(err, "failed to open store database")
	}
	defer db.Close() //nolint:errcheck // Best effort close in defer

	exists, err := w.tableExists(ctx, db, store)
	if err != nil {
		return err
	}

	if exists {
		switch store.IfExists {
		case domain.WriteModeFail:
			return backoff.Permanent(zerr.With(domain.ErrTableExists, "table", store.Table))
		case domain.WriteModeReplace:
			if _, err := db.ExecContext(ctx, "DROP TABLE "+quoteIdent(store.Driver, store.Table)); err != nil {
				return zerr.Wrap(err, "failed to drop table")
			}
		case domain.WriteModeAppend:
			// Insert into the existing table as-is.
		}
	}

	if !exists || store.IfExists == domain.WriteModeReplace {
		if err := w.createTable(ctx, db, store, ds); err != nil {
			return err
		}
	}

	return w.insertRows(ctx, db, store, ds)
}

func (w *Writer) tableExists(ctx context.Context, db *sql.DB, store domain.Store) (bool, error) {
	var query string
	switch store.Driver {
	case domain.DriverPostgres:
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1"
	default:
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	}

	var count int
	if err := db.QueryRowContext(ctx, query, store.Table).Scan(&count); err != nil {
		return false, zerr.Wrap(err, "failed to check table existence")
	}
	return count > 0, nil
}

func (w *Writer) createTable(ctx context.Context, db *sql.DB, store domain.Store, ds *domain.Dataset) error {
	kinds := ds.ColumnKinds()
	defs := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		defs[i] = quoteIdent(store.Driver, col) + " " + sqlType(store.Driver, kinds[i])
	}

	stmt := fmt.Sprintf("CREATE TABLE %s (%s)",
		quoteIdent(store.Driver, store.Table), strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create table"), "statement", stmt)
	}
	return nil
}

func (w *Writer) insertRows(ctx context.Context, db *sql.DB, store domain.Store, ds *domain.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to begin transaction")
	}

	columns := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		columns[i] = quoteIdent(store.Driver, col)
	}
	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ",
		quoteIdent(store.Driver, store.Table), strings.Join(columns, ", "))

	for start := 0; start < len(ds.Rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(ds.Rows))
		batch := ds.Rows[start:end]

		stmt := prefix + valuesClause(store.Driver, len(batch), ds.NumCols())
		args := make([]any, 0, len(batch)*ds.NumCols())
		for _, row := range batch {
			args = append(args, row...)
		}

		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			_ = tx.Rollback()
			return zerr.Wrap(err, "failed to insert rows")
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, "failed to commit export")
	}
	return nil
}

// valuesClause renders "(?, ?), (?, ?)" for mysql or "($1, $2), ($3, $4)"
// for postgres.
func valuesClause(driver domain.StoreDriver, rows, cols int) string {
	var sb strings.Builder
	arg := 1
	for r := range rows {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for c := range cols {
			if c > 0 {
				sb.WriteString(", ")
			}
			if driver == domain.DriverPostgres {
				fmt.Fprintf(&sb, "$%d", arg)
				arg++
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

func quoteIdent(driver domain.StoreDriver, name string) string {
	if driver == domain.DriverPostgres {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// sqlType maps an inferred column kind to the DDL type, mirroring the
// reference client's dtype mapping.
func sqlType(driver domain.StoreDriver, kind domain.ColumnKind) string {
	postgres := driver == domain.DriverPostgres
	switch kind {
	case domain.KindInt:
		return "BIGINT"
	case domain.KindFloat:
		if postgres {
			return "DOUBLE PRECISION"
		}
		return "DOUBLE"
	case domain.KindTime:
		if postgres {
			return "TIMESTAMP"
		}
		return "DATETIME"
	case domain.KindBool:
		if postgres {
			return "BOOLEAN"
		}
		return "TINYINT(1)"
	default:
		return "VARCHAR(255)"
	}
}
