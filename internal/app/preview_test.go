package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dbfetch/internal/core/domain"
)

func TestRenderPreview(t *testing.T) {
	ds, err := domain.NewDataset([]string{"id", "name", "score"}, 1)
	require.NoError(t, err)
	for i := range 8 {
		require.NoError(t, ds.AppendRow([]any{int64(i), "student", float64(i)}))
	}

	buf := new(bytes.Buffer)
	require.NoError(t, renderPreview(buf, "students", ds))
	out := buf.String()

	assert.Contains(t, out, "students: 8 rows, 3 columns")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "... 3 more rows")
	// Numeric columns get summary statistics.
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "score")
}

func TestRenderPreview_NoNumericColumns(t *testing.T) {
	ds, err := domain.NewDataset([]string{"name"}, 0)
	require.NoError(t, err)
	require.NoError(t, ds.AppendRow([]any{"ada"}))

	buf := new(bytes.Buffer)
	require.NoError(t, renderPreview(buf, "students", ds))

	assert.Contains(t, buf.String(), "students: 1 rows, 1 columns")
	assert.NotContains(t, buf.String(), "mean")
}
