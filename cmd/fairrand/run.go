package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fairrand/config"
	"github.com/katalvlaran/fairrand/generator"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		n           int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw from every stream in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Streams) == 0 {
				return errors.New("no streams configured; pass --config")
			}
			streams, err := config.Build(a.cfg, a.log, a.metrics)
			if err != nil {
				return err
			}

			// Streams share nothing but the logger and the collector, both
			// safe for concurrent use.
			results := make([][]any, len(streams))
			failures := make([]error, len(streams))
			var g errgroup.Group
			for i, s := range streams {
				g.Go(func() error {
					vs, err := s.Sample(n)
					if err != nil {
						msg := "stream failed"
						if exhausted(err) {
							msg = "stream cornered by its patterns"
						}
						a.log.Error(msg, slog.String("stream", s.Name), slog.Any("err", err))
						failures[i] = err
						return nil
					}
					results[i] = vs
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			for i, s := range streams {
				if failures[i] == nil {
					fmt.Fprintf(out, "%s: %s\n", s.Name, joinValues(results[i]))
				}
			}

			path := metricsFile
			if path == "" {
				path = a.cfg.MetricsFile
			}
			if path != "" {
				if err := prometheus.WriteToTextfile(path, a.reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			return errors.Join(failures...)
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "values per stream")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus text metrics here (overrides config)")

	return cmd
}

// exhausted reports whether err came from a retry budget running out.
func exhausted(err error) bool { return errors.Is(err, generator.ErrRetryBudgetExceeded) }
