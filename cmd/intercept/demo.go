package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/intercept/pkg/ballistics"
	"github.com/taigrr/intercept/pkg/math3d"
	"github.com/taigrr/intercept/pkg/sim"
)

type demoConfig struct {
	fps     int
	frames  int
	every   int
	speed   float64
	gravity float64
}

func newDemoCmd(opts *options) *cobra.Command {
	cfg := demoConfig{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Track a spring-driven target with a turret",
		Long: "demo moves a target between waypoints on damped springs and prints, every few\n" +
			"frames, the crosshairs and firing velocities a turret at the origin would use.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.fps <= 0 || cfg.every <= 0 {
				return fmt.Errorf("fps and every must be positive")
			}
			return runDemo(cmd, opts, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.fps, "fps", 60, "Frames per second")
	flags.IntVar(&cfg.frames, "frames", 600, "Frames to simulate")
	flags.IntVar(&cfg.every, "every", 30, "Print one frame in this many")
	flags.Float64Var(&cfg.speed, "speed", 200, "Projectile speed")
	flags.Float64Var(&cfg.gravity, "gravity", 98, "Downward projectile acceleration")
	return cmd
}

// waypoints the target cycles through, one per second.
var waypoints = []ballistics.Vec[float64]{
	ballistics.V2(300.0, 60),
	ballistics.V2(150.0, 180),
	ballistics.V2(-200.0, 100),
	ballistics.V2(-250.0, -40),
}

func runDemo(cmd *cobra.Command, opts *options, cfg demoConfig) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	target := sim.NewSpringTarget(cfg.fps, ballistics.V2(250.0, 0), 2, 0.6)
	turret := sim.Turret{
		Speed:        cfg.speed,
		Acceleration: ballistics.V2(0, -cfg.gravity),
		Solver:       ballistics.NewSolver[float64](ballistics.WithSink(opts.sink)),
	}

	for frame := range cfg.frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if frame%cfg.fps == 0 {
			target.SetGoal(waypoints[(frame/cfg.fps)%len(waypoints)])
		}
		target.Step()

		if frame%cfg.every != 0 {
			continue
		}
		aim := turret.TrackSpring(target)
		pos := math3d.Vec2FromArray(target.Position().Array2())
		fmt.Fprintf(out, "frame %4d target=%v", frame, pos)
		if len(aim.Times) == 0 {
			fmt.Fprintln(out, " out of range")
			continue
		}
		for i, c := range aim.Crosshairs {
			vel := math3d.Vec2FromArray(aim.Velocities[i].Array2())
			fmt.Fprintf(out, " | t=%.3f crosshair=%v fire=%v",
				aim.Times[i], math3d.Vec2FromArray(c.Array2()), vel)
		}
		fmt.Fprintln(out)
	}
	return nil
}
