package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/intercept/internal/scenario"
)

func newSolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <scenario.yaml|scene.glb>",
		Short: "Solve the scenarios in one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			reports := make([]report, len(ss))
			for i, s := range ss {
				opts.logger.Debug("solving", zap.String("scenario", s.Name), zap.Int("precision", opts.precision))
				reports[i] = newReport(s, opts.precision, solve(s, opts.precision, opts.sink))
			}
			if err := writeReports(cmd.OutOrStdout(), opts.output, reports); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			return nil
		},
	}
}
