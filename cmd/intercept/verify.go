package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/intercept/internal/scenario"
	"github.com/taigrr/intercept/pkg/sim"
)

// verifySlack absorbs solver round-off on top of the integration bound,
// relative to the engagement distance.
func verifySlack(precision int) float64 {
	if precision == 32 {
		return 1e-3
	}
	return 1e-6
}

func newVerifyCmd(opts *options) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "verify <scenario.yaml|scene.glb>",
		Short: "Replay every solution frame by frame and check it hits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			var misses int
			reports := make([]report, len(ss))
			for i, s := range ss {
				sols := solve(s, opts.precision, opts.sink)
				reports[i] = newReport(s, opts.precision, sols)
				for j, sol := range sols {
					res, err := sim.Fly(s.Motion, sol.FiringVelocity, sol.Time, fps)
					if err != nil {
						return fmt.Errorf("%s: %w", s.Name, err)
					}
					bound := sim.MissBound(s.Motion, sol.Time, res.Steps)
					reports[i].Shots[j].Miss = &res.Miss
					reports[i].Shots[j].MissBound = &bound

					if res.Miss > bound+verifySlack(opts.precision)*(1+s.Motion.ToTarget.Len()) {
						misses++
						opts.logger.Warn("shot missed",
							zap.String("scenario", s.Name),
							zap.Float64("time", sol.Time),
							zap.Float64("miss", res.Miss),
							zap.Float64("bound", bound))
					}
				}
			}

			if err := writeReports(cmd.OutOrStdout(), opts.output, reports); err != nil {
				return err
			}
			if misses > 0 {
				return fmt.Errorf("%d shot(s) missed", misses)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "Simulation frames per second")
	return cmd
}
