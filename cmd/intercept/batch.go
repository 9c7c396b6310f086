package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/intercept/internal/scenario"
)

func newBatchCmd(opts *options) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Solve many scenario files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := runBatch(cmd, opts, args, jobs)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), opts.output, reports)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Maximum concurrent solves")
	return cmd
}

// runBatch loads every file, then solves all scenarios with at most jobs
// running at once. Reports keep file and scenario order.
func runBatch(cmd *cobra.Command, opts *options, paths []string, jobs int) ([]report, error) {
	var all []scenario.Scenario
	for _, p := range paths {
		ss, err := scenario.Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, ss...)
	}

	reports := make([]report, len(all))
	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, s := range all {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger := opts.logger.With(zap.String("scenario", s.Name))
			reports[i] = newReport(s, opts.precision, solve(s, opts.precision, opts.sink))
			logger.Debug("solved", zap.Int("solutions", len(reports[i].Shots)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
