// internal/output/ptable.go
// Probability-to-z comparison table across distributions, plus the terse
// single-line form used for downstream parsing.
package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteProbabilityTable renders one row per probability with a z column
// per distribution name.
func WriteProbabilityTable(w io.Writer, names []string, probs []float64, zs [][]float64) error {
	if _, err := fmt.Fprintf(w, "\nProbabilities to z-values Table\n\n"); err != nil {
		return err
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(append([]string{"Probability"}, names...))
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetBorder(false)
	t.SetHeaderLine(true)
	t.SetRowSeparator("=")
	t.SetColumnSeparator(" ")
	t.SetCenterSeparator(" ")
	t.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, p := range probs {
		cells := make([]string, 0, 1+len(zs[i]))
		cells = append(cells, fmt.Sprintf("%.2f%%", p*100))
		for _, z := range zs[i] {
			cells = append(cells, fmt.Sprintf("%.3f", z))
		}
		t.Append(cells)
	}
	t.Render()
	_, err := fmt.Fprintln(w)
	return err
}

// WriteProbabilityBrief writes `95.00% 1.960 2.228...` lines, one per
// probability, with no headers.
func WriteProbabilityBrief(w io.Writer, probs []float64, zs [][]float64) error {
	for i, p := range probs {
		if _, err := fmt.Fprintf(w, "%.2f%%", p*100); err != nil {
			return err
		}
		for _, z := range zs[i] {
			if _, err := fmt.Fprintf(w, " %.3f", z); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
