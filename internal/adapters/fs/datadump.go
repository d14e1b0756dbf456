package fs

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Datadump = (*Datadump)(nil)

// Datadump writes datasets to local files in the datadump directory.
type Datadump struct{}

// NewDatadump creates a new Datadump.
func NewDatadump() *Datadump {
	return &Datadump{}
}

// WriteCSV writes the dataset as "<name>.csv" into the directory and returns
// the written file path. An existing file is overwritten.
func (d *Datadump) WriteCSV(dir string, name string, ds *domain.Dataset) (string, error) {
	path := filepath.Join(dir, name+".csv")

	f, err := os.Create(path) //nolint:gosec // path derives from user config
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create datadump file"), "path", path)
	}

	w := csv.NewWriter(f)
	if err := w.Write(ds.Columns); err != nil {
		_ = f.Close()
		return "", zerr.Wrap(err, "failed to write csv header")
	}

	record := make([]string, ds.NumCols())
	for _, row := range ds.Rows {
		for i, v := range row {
			record[i] = domain.FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return "", zerr.Wrap(err, "failed to write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return "", zerr.Wrap(err, "failed to flush csv")
	}
	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to close datadump file"), "path", path)
	}

	return path, nil
}
