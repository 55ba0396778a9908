package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/tmeckel/tfsprops/internal/text"
)

const (
	columnGap = "  "
	ellipsis  = "..."
)

type tableField struct {
	text         string
	truncateFunc func(int, string) string
	colorFunc    func(string) string
}

// NewTablePrinter initializes a table printer. In terminal mode the columns
// are aligned, the header is printed in upper case and the last column is
// truncated to fit maxWidth. Otherwise the output is tab separated, without
// header, colors or truncation.
func NewTablePrinter(w io.Writer, isTTY bool, maxWidth int) Printer {
	return &tablePrinter{
		out:      w,
		isTTY:    isTTY,
		maxWidth: maxWidth,
	}
}

type tablePrinter struct {
	out      io.Writer
	isTTY    bool
	maxWidth int
	header   []string
	rows     [][]tableField
}

func (t *tablePrinter) AddColumns(columns ...string) {
	t.header = append(t.header, columns...)
}

func (t *tablePrinter) AddField(s string, opts ...FieldOption) {
	if t.rows == nil {
		t.rows = [][]tableField{{}}
	}
	f := tableField{
		text:         s,
		truncateFunc: truncateText,
	}
	for _, opt := range opts {
		opt(&f)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], f)
}

func (t *tablePrinter) EndRow() {
	t.rows = append(t.rows, []tableField{})
}

func (t *tablePrinter) Render() error {
	rows := t.rows
	if n := len(rows); n > 0 && len(rows[n-1]) == 0 {
		rows = rows[:n-1]
	}
	if len(rows) == 0 {
		return nil
	}

	if !t.isTTY {
		for _, row := range rows {
			fields := make([]string, len(row))
			for i, f := range row {
				fields[i] = f.text
			}
			if _, err := fmt.Fprintln(t.out, strings.Join(fields, "\t")); err != nil {
				return err
			}
		}
		return nil
	}

	if len(t.header) > 0 {
		hdr := make([]tableField, len(t.header))
		for i, h := range t.header {
			hdr[i] = tableField{text: strings.ToUpper(h)}
		}
		rows = append([][]tableField{hdr}, rows...)
	}

	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, f := range row {
			widths[i] = max(widths[i], text.DisplayWidth(f.text))
		}
	}

	for _, row := range rows {
		used := 0
		for i, f := range row {
			val := f.text
			last := i == len(row)-1
			if last && t.maxWidth > 0 && f.truncateFunc != nil {
				if avail := t.maxWidth - used; avail > 0 {
					val = f.truncateFunc(avail, val)
				}
			}
			if f.colorFunc != nil {
				val = f.colorFunc(val)
			}
			if !last {
				val = text.PadRight(widths[i], val) + columnGap
				used += widths[i] + len(columnGap)
			}
			if _, err := fmt.Fprint(t.out, val); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(t.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func truncateText(maxWidth int, s string) string {
	if text.DisplayWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return truncate.String(s, uint(maxWidth))
	}
	return truncate.StringWithTail(s, uint(maxWidth), ellipsis)
}
