package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Render prints the headline metrics followed by one table per section.
func Render(w io.Writer, r Report) {
	t := newTable(w)
	title := r.Title
	if r.RunID != "" {
		title = fmt.Sprintf("%s (run %s)", r.Title, r.RunID)
	}
	t.SetTitle(title)
	for _, m := range r.Metrics {
		t.AppendRow(table.Row{m.Label, formatValue(m.Value)})
	}
	t.Render()

	for _, s := range r.Sections {
		st := newTable(w)
		st.SetTitle(s.Title)
		header := table.Row{}
		for _, h := range s.Header {
			header = append(header, h)
		}
		st.AppendHeader(header)
		for _, row := range s.Rows {
			cells := make(table.Row, len(row))
			for i, v := range row {
				cells[i] = formatValue(v)
			}
			st.AppendRow(cells)
		}
		st.Render()
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case int:
		return humanize.Comma(int64(x))
	case int64:
		return humanize.Comma(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []string:
		return strings.Join(x, ", ")
	case []byte:
		return string(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
