package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/matcher"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "patterns {bool|int|float|gaussian}",
		Short:     "List the built-in patterns for a value kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bool", "int", "float", "gaussian"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tLOOK-BACK")
			switch args[0] {
			case "bool":
				listPatterns(tw, catalog.Bool())
			case "int":
				listPatterns(tw, catalog.Int())
			case "float":
				listPatterns(tw, catalog.Float())
			case "gaussian":
				listPatterns(tw, catalog.Gaussian())
			default:
				return fmt.Errorf("unknown kind %q", args[0])
			}

			return tw.Flush()
		},
	}
}

func listPatterns[T comparable](tw *tabwriter.Writer, protos []matcher.Prototype[T]) {
	for _, p := range protos {
		m, err := p.Build()
		if err != nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d-%d\n", p.Name(), p.Kind(), m.MinLookBack(), m.MaxLookBack())
	}
}
