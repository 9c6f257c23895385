// Package report formats plain-text tables for CLI output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a set of rows under headers. Columns listed in RightAlign are
// padded on the left.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign map[int]bool
}

// Lines renders the table with columns padded to their widest cell.
func (t Table) Lines() []string {
	colCount := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range t.Headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(t.Rows)+1)
	if len(t.Headers) > 0 {
		lines = append(lines, t.formatRow(t.Headers, widths))
	}
	for _, row := range t.Rows {
		lines = append(lines, t.formatRow(row, widths))
	}
	return lines
}

// Write prints the table to w, one line per row.
func (t Table) Write(w io.Writer) error {
	for _, line := range t.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (t Table) formatRow(row []string, widths []int) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		last := i == len(widths)-1
		b.WriteString(padCell(cell, widths[i], t.RightAlign[i], last))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign, last bool) string {
	if rightAlign {
		return runewidth.FillLeft(value, width)
	}
	if last {
		return value
	}
	return runewidth.FillRight(value, width)
}
