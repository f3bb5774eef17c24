package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// errPatternsFound makes audit exit non-zero when a pattern is present.
var errPatternsFound = errors.New("sequence completes one or more patterns")

func newAuditCmd(a *app) *cobra.Command {
	var sf streamFlags
	cmd := &cobra.Command{
		Use:   "audit {bool|int|float|gaussian} VALUE...",
		Short: "Report which patterns a sequence of values completes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := sf.build(a, args[0])
			if err != nil {
				return err
			}
			names, err := b.Audit(args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "ok")
				return nil
			}
			fmt.Fprintln(out, strings.Join(names, "\n"))

			return errPatternsFound
		},
	}
	sf.register(cmd)

	return cmd
}
