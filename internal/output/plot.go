// internal/output/plot.go
package output

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"ztab-core/dist"
)

const plotSamples = 120

// WritePlot renders an ASCII sketch of the density curve over [zmin, zmax].
// Purely illustrative; the table below it is the real output.
func WritePlot(w io.Writer, d dist.Dist, zmin, zmax float64) error {
	data := make([]float64, 0, plotSamples+1)
	for i := 0; i <= plotSamples; i++ {
		x := zmin + (zmax-zmin)*float64(i)/plotSamples
		data = append(data, d.PDF(x))
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("%s density over [%g, %g]", d.Name(), zmin, zmax)),
	)
	_, err := fmt.Fprintf(w, "\n%s\n", graph)
	return err
}
