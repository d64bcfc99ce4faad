// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	flag "github.com/spf13/pflag"

	"ztab/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Distribution selection
	SND    bool
	TDists []int // Student-t degrees of freedom, one table/column each

	// Inverse lookup
	Probs []float64 // central probabilities; empty means table mode

	// Numeric parameters
	Intervals  int
	LowerBound float64
	UpperBound float64
	Tolerance  float64
	MaxIter    int
	MinusInf   float64 // 0 = derive from the z range

	// Output
	Brief   bool
	Output  string // text | json
	Plot    bool
	Verbose bool

	Version bool
}

// envDefaults lets ZTAB_* environment variables override the built-in
// defaults before flags are applied.
type envDefaults struct {
	Intervals int     `env:"ZTAB_INTERVALS" envDefault:"10000"`
	Tolerance float64 `env:"ZTAB_TOLERANCE" envDefault:"0.00001"`
	MaxIter   int     `env:"ZTAB_MAX_ITER" envDefault:"200"`
	Output    string  `env:"ZTAB_OUTPUT" envDefault:"text"`
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: z-tables for the standard normal and Student-t distributions

Generates textbook cumulative-probability tables, or looks up the z-value
for given probabilities, by numerically integrating the closed-form
densities (trapezoidal rule) and inverting the CDF by binary search.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var def envDefaults
	if err := env.Parse(&def); err != nil {
		return opt, fmt.Errorf("environment defaults: %w", err)
	}

	// Distribution selection
	fs.BoolVarP(&opt.SND, "snd", "s", false, "standard normal distribution [false]")
	fs.IntSliceVarP(&opt.TDists, "tdist", "t", nil, "Student-t with DOF degrees of freedom (repeatable)")

	// Inverse lookup
	var probs probList
	fs.VarP(&probs, "probability", "p", "probability to solve a z-value for, in [0.001, 0.9999]; percent values 1..99 are converted (repeatable, comma-separable)")

	// Numeric parameters
	fs.IntVarP(&opt.Intervals, "intervals", "i", def.Intervals, "trapezoids per integral; more is slower and more accurate")
	fs.Float64VarP(&opt.LowerBound, "lower-bound", "l", -3.4, "leftmost z row to report")
	fs.Float64VarP(&opt.UpperBound, "upper-bound", "u", 3.49, "rightmost z row to report")
	fs.Float64VarP(&opt.Tolerance, "tolerance", "T", def.Tolerance, "probability tolerance for the binary search")
	fs.IntVar(&opt.MaxIter, "max-iter", def.MaxIter, "iteration cap for the binary search")
	fs.Float64Var(&opt.MinusInf, "min-inf", 0, "finite lower integration bound standing in for -inf (0 = derive from the z range)")

	// Output
	fs.BoolVarP(&opt.Brief, "brief", "b", false, "terse parse-friendly probability output [false]")
	fs.StringVar(&opt.Output, "output", def.Output, "output format: text | json [text]")
	fs.BoolVar(&opt.Plot, "plot", false, "ASCII plot of each density curve before its table [false]")
	fs.BoolVarP(&opt.Verbose, "verbose", "v", false, "trace binary-search iterations to stderr [false]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Probs = probs

	// Validation
	if len(opt.Probs) > 0 && !opt.SND && len(opt.TDists) == 0 {
		// Probability lookup with no distribution picked falls back to the SND.
		opt.SND = true
	}
	switch {
	case !opt.SND && len(opt.TDists) == 0:
		return opt, errors.New("specify --snd and/or --tdist to pick a distribution")
	case opt.UpperBound <= opt.LowerBound:
		return opt, fmt.Errorf("--upper-bound %g must exceed --lower-bound %g", opt.UpperBound, opt.LowerBound)
	case opt.Intervals < 2:
		return opt, fmt.Errorf("--intervals must be >= 2, got %d", opt.Intervals)
	case opt.Tolerance <= 0:
		return opt, fmt.Errorf("--tolerance must be positive, got %g", opt.Tolerance)
	case opt.MaxIter < 1:
		return opt, fmt.Errorf("--max-iter must be >= 1, got %d", opt.MaxIter)
	case opt.MinusInf > 0:
		return opt, fmt.Errorf("--min-inf must be negative (or 0 to derive), got %g", opt.MinusInf)
	case opt.Output != "text" && opt.Output != "json":
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	for _, dof := range opt.TDists {
		if dof <= 2 {
			return opt, fmt.Errorf("--tdist %d: degrees of freedom must exceed 2", dof)
		}
	}
	return opt, nil
}

// probList parses repeatable, comma-separable probability flags.
// Values in [1, 100) are treated as percentages and divided by 100, so
// `-p 95` and `-p 0.95` mean the same thing.
type probList []float64

func (p *probList) String() string {
	parts := make([]string, len(*p))
	for i, v := range *p {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (p *probList) Set(v string) error {
	for _, raw := range strings.Split(v, ",") {
		num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid probability %q", raw)
		}
		if num >= 1 && num < 100 {
			num /= 100
		}
		if num < 0.001 || num > 0.9999 {
			return fmt.Errorf("probability %g out of range [0.001, 0.9999]", num)
		}
		*p = append(*p, num)
	}
	return nil
}

func (p *probList) Type() string { return "float" }
