package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.trai.ch/dbfetch/internal/core/domain"
)

// previewRows is the number of leading rows shown in the preview.
const previewRows = 5

// renderPreview writes a short report of the dataset: its shape, the leading
// rows and summary statistics for the numeric columns.
func renderPreview(w io.Writer, name string, ds *domain.Dataset) error {
	if _, err := fmt.Fprintf(w, "%s: %d rows, %d columns\n\n", name, ds.NumRows(), ds.NumCols()); err != nil {
		return err
	}

	if err := renderHead(w, ds); err != nil {
		return err
	}

	summaries := ds.Describe()
	if len(summaries) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return renderDescribe(w, summaries)
}

func renderHead(w io.Writer, ds *domain.Dataset) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(ds.Columns, "\t"))

	for _, row := range ds.Head(previewRows).Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = domain.FormatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if ds.NumRows() > previewRows {
		fmt.Fprintf(tw, "... %d more rows\n", ds.NumRows()-previewRows)
	}
	return tw.Flush()
}

func renderDescribe(w io.Writer, summaries []domain.ColumnSummary) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\tmax")

	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			s.Column, s.Count,
			formatStat(s.Mean), formatStat(s.Std), formatStat(s.Min), formatStat(s.Max))
	}
	return tw.Flush()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
