// internal/app/app.go
package app

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"ztab-core/dist"
	"ztab-core/numerr"
	"ztab-core/solve"
	"ztab-core/table"

	"ztab/internal/cli"
	"ztab/internal/output"
	"ztab/internal/version"
	"ztab/internal/writers"
)

// RunContext parses argv and runs either table generation or the inverse
// probability lookup. Exit codes: 0 ok, 2 usage or compute error, 3 write
// error. A broken output pipe counts as success.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("ztab")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return writers.Flush(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ztab version %s\n", version.Version)
		return writers.Flush(outw, stderr)
	}

	dists, err := buildDists(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	minusInf := opts.MinusInf
	if minusInf == 0 {
		minusInf = table.DeriveMinusInf(opts.LowerBound, opts.UpperBound)
	}

	if len(opts.Probs) == 0 {
		err = runTables(ctx, outw, opts, dists, minusInf)
	} else {
		err = runProbabilities(outw, stderr, opts, dists, minusInf)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	return writers.Flush(outw, stderr)
}

// Run is RunContext without caller-supplied cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func buildDists(opts cli.Options) ([]dist.Dist, error) {
	var dists []dist.Dist
	if opts.SND {
		dists = append(dists, dist.SND{})
	}
	for _, dof := range opts.TDists {
		td, err := dist.NewTDist(float64(dof))
		if err != nil {
			return nil, err
		}
		dists = append(dists, td)
	}
	return dists, nil
}

func runTables(ctx context.Context, w io.Writer, opts cli.Options, dists []dist.Dist, minusInf float64) error {
	cfg := table.Config{
		ZMin:      opts.LowerBound,
		ZMax:      opts.UpperBound,
		Intervals: opts.Intervals,
		MinusInf:  minusInf,
	}
	for _, d := range dists {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows, err := table.Generate(d, cfg)
		if err != nil {
			return errors.Wrapf(err, "generate %s table", d.Name())
		}
		if opts.Plot {
			if err := output.WritePlot(w, d, opts.LowerBound, opts.UpperBound); err != nil {
				return err
			}
		}
		if opts.Output == "json" {
			if err := output.WriteTableJSON(w, d.Name(), cfg, rows); err != nil {
				return err
			}
			continue
		}
		if err := output.WriteZTable(w, tableTitle(d, opts.Intervals), rows); err != nil {
			return err
		}
	}
	return nil
}

func tableTitle(d dist.Dist, intervals int) string {
	n := humanize.Comma(int64(intervals))
	if td, ok := d.(dist.TDist); ok {
		return fmt.Sprintf("z-Table for Student-t Distribution (%s, %g DOF)", n, td.DOF)
	}
	return fmt.Sprintf("z-Table for Standard Normal Distribution (%s)", n)
}

func runProbabilities(w, stderr io.Writer, opts cli.Options, dists []dist.Dist, minusInf float64) error {
	sopt := solve.Options{
		Lo:        minusInf / 2,
		Hi:        -minusInf / 2,
		Tolerance: opts.Tolerance,
		MaxIter:   opts.MaxIter,
		Intervals: opts.Intervals,
		MinusInf:  minusInf,
	}
	if opts.Verbose {
		sopt.Trace = func(s solve.Step) {
			_, _ = fmt.Fprintf(stderr, "  n=%-3d lo=%9.6f hi=%9.6f mid=%9.6f cum=%.6f\n",
				s.N, s.Lo, s.Hi, s.Mid, s.Cum)
		}
	}

	names := make([]string, 0, len(dists))
	for _, d := range dists {
		names = append(names, d.Name())
	}

	zs := make([][]float64, len(opts.Probs))
	docs := make([]output.SolveDoc, 0, len(opts.Probs))
	for i, p := range opts.Probs {
		zs[i] = make([]float64, 0, len(dists))
		doc := output.SolveDoc{Probability: p}
		for _, d := range dists {
			// The user's probability is central (two-tailed); the solver
			// inverts the one-sided cumulative.
			z, err := solve.ZForCumulative(d, solve.CentralToCumulative(p), sopt)
			switch {
			case numerr.IsConvergenceLimit(err):
				_, _ = fmt.Fprintf(stderr, "ztab: %s: %v\n", d.Name(), err)
			case err != nil:
				return errors.Wrapf(err, "solve %s for %.2f%%", d.Name(), p*100)
			}
			zs[i] = append(zs[i], z)
			doc.Results = append(doc.Results, output.SolveCell{
				Distribution: d.Name(),
				Z:            z,
				Converged:    err == nil,
			})
		}
		docs = append(docs, doc)
	}

	switch {
	case opts.Output == "json":
		return output.WriteSolveJSON(w, docs)
	case opts.Brief:
		return output.WriteProbabilityBrief(w, opts.Probs, zs)
	default:
		return output.WriteProbabilityTable(w, names, opts.Probs, zs)
	}
}
