package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Dataset is a materialized query result. Column names are lowercased on
// creation; the first IndexColumns columns are the identifying keys.
type Dataset struct {
	Columns      []string
	IndexColumns int
	Rows         [][]any
}

// NewDataset creates an empty dataset for the given columns.
func NewDataset(columns []string, indexColumns int) (*Dataset, error) {
	if indexColumns < 0 || indexColumns > len(columns) {
		return nil, zerr.With(zerr.With(ErrIndexColumnsOutOfRange,
			"columns", len(columns)),
			"index_columns", indexColumns)
	}

	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(c)
	}

	return &Dataset{
		Columns:      lowered,
		IndexColumns: indexColumns,
	}, nil
}

// AppendRow adds a row to the dataset.
func (d *Dataset) AppendRow(row []any) error {
	if len(row) != len(d.Columns) {
		return zerr.With(zerr.With(ErrRowLengthMismatch,
			"columns", len(d.Columns)),
			"row_length", len(row))
	}
	d.Rows = append(d.Rows, row)
	return nil
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int {
	return len(d.Columns)
}

// IndexNames returns the names of the index columns.
func (d *Dataset) IndexNames() []string {
	return d.Columns[:d.IndexColumns]
}

// Head returns a dataset holding at most n leading rows. The rows are shared
// with the receiver.
func (d *Dataset) Head(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return &Dataset{
		Columns:      d.Columns,
		IndexColumns: d.IndexColumns,
		Rows:         d.Rows[:n],
	}
}

// ColumnKind classifies the values observed in a column. It drives both the
// cache encoding and the SQL type chosen for an export.
type ColumnKind int

const (
	// KindUnknown means no non-NULL value was observed.
	KindUnknown ColumnKind = iota
	// KindBool holds boolean values.
	KindBool
	// KindInt holds integer values.
	KindInt
	// KindFloat holds floating point values.
	KindFloat
	// KindTime holds timestamps.
	KindTime
	// KindString holds text, or a mix of incompatible kinds.
	KindString
)

// String returns the string representation of the kind.
func (k ColumnKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// ColumnKinds infers the kind of every column from the stored values.
// Integer and float values in the same column promote to float; any other
// mix degrades to string.
func (d *Dataset) ColumnKinds() []ColumnKind {
	kinds := make([]ColumnKind, len(d.Columns))
	for _, row := range d.Rows {
		for i, v := range row {
			kinds[i] = promoteKind(kinds[i], kindOf(v))
		}
	}
	return kinds
}

func kindOf(v any) ColumnKind {
	switch v.(type) {
	case nil:
		return KindUnknown
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case time.Time:
		return KindTime
	default:
		return KindString
	}
}

func promoteKind(a, b ColumnKind) ColumnKind {
	switch {
	case a == b:
		return a
	case a == KindUnknown:
		return b
	case b == KindUnknown:
		return a
	case (a == KindInt && b == KindFloat) || (a == KindFloat && b == KindInt):
		return KindFloat
	default:
		return KindString
	}
}

// ColumnSummary holds the summary statistics of a numeric column.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
}

// Describe computes summary statistics for every numeric column, skipping
// NULLs. The standard deviation is the sample deviation; it is zero for
// fewer than two values.
func (d *Dataset) Describe() []ColumnSummary {
	kinds := d.ColumnKinds()

	var summaries []ColumnSummary
	for i, kind := range kinds {
		if kind != KindInt && kind != KindFloat {
			continue
		}

		var values []float64
		for _, row := range d.Rows {
			if f, ok := asFloat(row[i]); ok {
				values = append(values, f)
			}
		}
		summaries = append(summaries, summarize(d.Columns[i], values))
	}
	return summaries
}

func summarize(column string, values []float64) ColumnSummary {
	s := ColumnSummary{Column: column, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Min = values[0]
	s.Max = values[0]
	var sum float64
	for _, v := range values {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(values))

	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			sq += (v - s.Mean) * (v - s.Mean)
		}
		s.Std = math.Sqrt(sq / float64(len(values)-1))
	}
	return s
}

// FormatValue renders a cell value for human-facing output such as the CSV
// dump and the preview table. NULL renders as the empty string, timestamps
// as RFC 3339.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
