package sqldb

import (
	"database/sql"

	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// scanRows materializes rows into a dataset. Byte slices are copied to
// strings since the driver may reuse the buffer between rows.
func scanRows(rows *sql.Rows, indexColumns int) (*domain.Dataset, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read result columns")
	}

	ds, err := domain.NewDataset(columns, indexColumns)
	if err != nil {
		return nil, err
	}

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, zerr.Wrap(err, "failed to scan row")
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		if err := ds.AppendRow(values); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to iterate rows")
	}

	return ds, nil
}
