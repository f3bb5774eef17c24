package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fairrand/config"
)

// streamFlags describes one ad-hoc stream on the command line.
type streamFlags struct {
	min, max     float64
	mean, stddev float64
	seed         uint64
	budget       int
	patterns     []string
	unfiltered   bool
}

func (f *streamFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.min, "min", 0, "lower bound, inclusive (int, float)")
	fl.Float64Var(&f.max, "max", 100, "upper bound, exclusive (int, float)")
	fl.Float64Var(&f.mean, "mean", 0, "mean (gaussian)")
	fl.Float64Var(&f.stddev, "stddev", 1, "standard deviation (gaussian)")
	fl.Uint64Var(&f.seed, "seed", 0, "seed; 0 uses the configured seed")
	fl.IntVar(&f.budget, "budget", 0, "retry budget; 0 uses the configured budget")
	fl.StringSliceVar(&f.patterns, "pattern", nil, "catalog pattern to enable (repeatable); default all")
	fl.BoolVar(&f.unfiltered, "unfiltered", false, "disable every pattern")
}

// build turns the flags into a single built stream.
func (f *streamFlags) build(a *app, kind string) (*config.Built, error) {
	s := config.Stream{
		Name:        kind,
		Kind:        kind,
		Min:         f.min,
		Max:         f.max,
		Mean:        f.mean,
		StdDev:      f.stddev,
		RetryBudget: f.budget,
		Unfiltered:  f.unfiltered,
	}
	for _, p := range f.patterns {
		s.Patterns = append(s.Patterns, config.Pattern{Name: p})
	}
	if f.seed != 0 {
		s.Seed = &f.seed
	}

	cfg := a.cfg
	cfg.Streams = []config.Stream{s}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	built, err := config.Build(cfg, a.log, a.metrics)
	if err != nil {
		return nil, err
	}

	return built[0], nil
}

func newRollCmd(a *app) *cobra.Command {
	var (
		sf streamFlags
		n  int
	)
	cmd := &cobra.Command{
		Use:       "roll {bool|int|float|gaussian}",
		Short:     "Draw filtered values of one kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bool", "int", "float", "gaussian"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := sf.build(a, args[0])
			if err != nil {
				return err
			}
			vs, err := b.Sample(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinValues(vs))

			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of values")

	return cmd
}

func joinValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}
