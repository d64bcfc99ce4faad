// internal/output/json.go
package output

import (
	"io"

	"ztab-core/table"

	"ztab/internal/jsonutil"
)

// TableDoc is the JSON form of one cumulative table.
type TableDoc struct {
	Distribution string   `json:"distribution"`
	Intervals    int      `json:"intervals"`
	MinusInf     float64  `json:"minus_inf"`
	Rows         []RowDoc `json:"rows"`
}

// RowDoc is one table row: the z label and its ten column probabilities.
type RowDoc struct {
	Z     float64   `json:"z"`
	Probs []float64 `json:"p"`
}

// WriteTableJSON emits one indented JSON document for a generated table.
func WriteTableJSON(w io.Writer, name string, cfg table.Config, rows []table.Row) error {
	doc := TableDoc{
		Distribution: name,
		Intervals:    cfg.Intervals,
		MinusInf:     cfg.MinusInf,
		Rows:         make([]RowDoc, 0, len(rows)),
	}
	for _, r := range rows {
		probs := make([]float64, len(r.Probs))
		copy(probs, r.Probs[:])
		doc.Rows = append(doc.Rows, RowDoc{Z: r.Z, Probs: probs})
	}
	return jsonutil.EncodePretty(w, doc)
}

// SolveDoc is the JSON form of one probability lookup across distributions.
type SolveDoc struct {
	Probability float64     `json:"probability"`
	Results     []SolveCell `json:"results"`
}

// SolveCell is one solved z-value.
type SolveCell struct {
	Distribution string  `json:"distribution"`
	Z            float64 `json:"z"`
	Converged    bool    `json:"converged"`
}

// WriteSolveJSON emits the full lookup result set as one document.
func WriteSolveJSON(w io.Writer, docs []SolveDoc) error {
	return jsonutil.EncodePretty(w, docs)
}
