// internal/output/ztable.go
// Textbook z-table rendering: header .00-.09, row labels at 0.1 steps,
// four decimal places per cell.
package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"ztab-core/table"
)

// WriteZTable renders one cumulative table under its title.
func WriteZTable(w io.Writer, title string, rows []table.Row) error {
	if _, err := fmt.Fprintf(w, "\n%s\n\n", title); err != nil {
		return err
	}

	t := tablewriter.NewWriter(w)
	header := make([]string, 0, 11)
	header = append(header, "z")
	for i := 0; i < 10; i++ {
		header = append(header, fmt.Sprintf(".%02d", i))
	}
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetBorder(false)
	t.SetHeaderLine(true)
	t.SetRowSeparator("=")
	t.SetColumnSeparator(" ")
	t.SetCenterSeparator(" ")
	t.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range rows {
		cells := make([]string, 0, 11)
		cells = append(cells, fmt.Sprintf("%.1f", r.Z))
		for _, p := range r.Probs {
			cells = append(cells, fmt.Sprintf("%.4f", p))
		}
		t.Append(cells)
	}
	t.Render()
	_, err := fmt.Fprintln(w)
	return err
}
