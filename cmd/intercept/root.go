package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/intercept/pkg/zapdiag"
)

// options are shared by every subcommand.
type options struct {
	precision int
	output    string
	verbose   bool
	quiet     bool

	logger *zap.Logger
	sink   *zapdiag.Sink
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "intercept",
		Short: "Projectile interception solver",
		Long: "intercept finds when and where a projectile under constant acceleration can\n" +
			"meet an accelerating target, and the firing velocity that gets it there.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.precision, "precision", 64, "Floating-point precision to solve in (32 or 64)")
	flags.StringVarP(&opts.output, "output", "o", "text", "Output format (text or yaml)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Human-readable debug logging")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Discard all log output")

	root.AddCommand(
		newSolveCmd(opts),
		newBatchCmd(opts),
		newVerifyCmd(opts),
		newDemoCmd(opts),
		newConvertCmd(opts),
	)
	return root
}

func (o *options) setup() error {
	if o.precision != 32 && o.precision != 64 {
		return fmt.Errorf("invalid precision %d: want 32 or 64", o.precision)
	}
	if o.output != "text" && o.output != "yaml" {
		return fmt.Errorf("invalid output %q: want text or yaml", o.output)
	}

	logger, err := newLogger(o.verbose, o.quiet)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.logger = logger
	o.sink = zapdiag.New(logger)
	return nil
}

func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	switch {
	case quiet:
		return zap.NewNop(), nil
	case verbose:
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}
