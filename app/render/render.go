// Package render turns materialized columns into a fixed-width textual
// table. It consumes only the string forms of cells, so any Cell variant
// prints without special-casing.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/zidaye/odbc-bridge/app/bridge"
	"github.com/zidaye/odbc-bridge/common"
)

const (
	padding = 2
	padChar = ' '
)

// Options adjusts the rendering; the zero value keeps cell defaults.
type Options struct {
	// NullLiteral replaces the default textual form of NULL cells.
	NullLiteral string
}

// Table writes one header row of column names followed by one line per row
// of cell string forms. Every column must hold the same number of rows.
func Table(w io.Writer, names []string, columns [][]bridge.Cell) error {
	return TableWithOptions(w, names, columns, Options{})
}

// TableWithOptions is Table with explicit rendering options.
func TableWithOptions(w io.Writer, names []string, columns [][]bridge.Cell, opts Options) error {
	if len(names) != len(columns) {
		return fmt.Errorf("%d column names for %d columns: %w",
			len(names), len(columns), common.ErrInvariantViolation)
	}

	rows := 0
	for i, column := range columns {
		if i == 0 {
			rows = len(column)
			continue
		}

		if len(column) != rows {
			return fmt.Errorf("column '%s' has %d rows, expected %d: %w",
				names[i], len(column), rows, common.ErrInvariantViolation)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, padding, padChar, 0)

	if _, err := fmt.Fprintln(tw, strings.Join(names, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	line := make([]string, len(columns))

	for row := 0; row < rows; row++ {
		for col := range columns {
			cell := columns[col][row]

			if cell.IsNull() && opts.NullLiteral != "" {
				line[col] = opts.NullLiteral
				continue
			}

			line[col] = cell.String()
		}

		if _, err := fmt.Fprintln(tw, strings.Join(line, "\t")); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	return nil
}
