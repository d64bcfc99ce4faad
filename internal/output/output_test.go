// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ztab-core/dist"
	"ztab-core/table"
)

func sampleRows() []table.Row {
	return []table.Row{
		{Z: -0.1, Probs: [10]float64{0.4602, 0.4562, 0.4522, 0.4483, 0.4443, 0.4404, 0.4364, 0.4325, 0.4286, 0.4247}},
		{Z: 0.0, Probs: [10]float64{0.5000, 0.5040, 0.5080, 0.5120, 0.5160, 0.5199, 0.5239, 0.5279, 0.5319, 0.5359}},
	}
}

func TestWriteZTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteZTable(&buf, "z-Table for Standard Normal Distribution (10,000)", sampleRows())
	require.NoError(t, err)

	s := buf.String()
	require.Contains(t, s, "z-Table for Standard Normal Distribution (10,000)")
	require.Contains(t, s, ".00")
	require.Contains(t, s, ".09")
	require.Contains(t, s, "0.5000")
	require.Contains(t, s, "0.5359")
	require.Contains(t, s, "-0.1")
}

func TestWriteProbabilityTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteProbabilityTable(&buf,
		[]string{"SND", "T-10"},
		[]float64{0.95, 0.99},
		[][]float64{{1.960, 2.228}, {2.576, 3.169}},
	)
	require.NoError(t, err)

	s := buf.String()
	require.Contains(t, s, "Probabilities to z-values Table")
	require.Contains(t, s, "Probability")
	require.Contains(t, s, "T-10")
	require.Contains(t, s, "95.00%")
	require.Contains(t, s, "1.960")
	require.Contains(t, s, "3.169")
}

func TestWriteProbabilityBrief(t *testing.T) {
	var buf bytes.Buffer
	err := WriteProbabilityBrief(&buf, []float64{0.95}, [][]float64{{1.960, 2.228}})
	require.NoError(t, err)
	require.Equal(t, "95.00% 1.960 2.228\n", buf.String())
}

func TestWriteTableJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := table.Config{Intervals: 10000, MinusInf: -14}
	err := WriteTableJSON(&buf, "SND", cfg, sampleRows())
	require.NoError(t, err)

	var doc TableDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "SND", doc.Distribution)
	require.Equal(t, 10000, doc.Intervals)
	require.Len(t, doc.Rows, 2)
	require.Len(t, doc.Rows[0].Probs, 10)
	require.InDelta(t, 0.5, doc.Rows[1].Probs[0], 1e-12)
}

func TestWriteSolveJSON(t *testing.T) {
	var buf bytes.Buffer
	docs := []SolveDoc{{
		Probability: 0.95,
		Results:     []SolveCell{{Distribution: "SND", Z: 1.96, Converged: true}},
	}}
	require.NoError(t, WriteSolveJSON(&buf, docs))

	var back []SolveDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, docs, back)
}

func TestWritePlot(t *testing.T) {
	var buf bytes.Buffer
	err := WritePlot(&buf, dist.SND{}, -3.4, 3.49)
	require.NoError(t, err)

	s := buf.String()
	require.Contains(t, s, "SND density")
	// The curve should actually plot something taller than its baseline.
	require.Greater(t, len(strings.Split(s, "\n")), 5)
}
