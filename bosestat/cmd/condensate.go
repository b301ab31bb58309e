package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/bosestat/chempot"
	"github.com/sarchlab/bosestat/config"
	"github.com/sarchlab/bosestat/plotting"
	"github.com/sarchlab/bosestat/rootfind"
	"github.com/sarchlab/bosestat/sweep"
)

func newCondensateCmd() *cobra.Command {
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "condensate",
		Short: "Sweep a many-level Bose gas over temperature.",
		Long: `Solves the chemical potential of N bosons over evenly spaced ` +
			`levels at every temperature and plots -mu, the ground-state ` +
			`occupation, its logarithm, its temperature derivative and the ` +
			`specific-heat proxy Cv = -T d<n0>/dT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindings := append(temperatureBindings("condensate"),
				binding{"condensate.particles", "particles"},
				binding{"condensate.levels", "levels"},
				binding{"condensate.spacing", "spacing"},
				binding{"solver.guard", "guard"},
				binding{"solver.window", "window"},
				binding{"solver.widen_factor", "widen-factor"},
				binding{"solver.max_retries", "max-retries"},
				binding{"solver.rel_tol", "rel-tol"},
				binding{"output.condensate", "output"},
			)

			c, logger, err := loadConfig(cmd, bindings)
			if err != nil {
				return err
			}

			return runCondensate(c, logger)
		},
	}

	f := cmd.Flags()
	f.Float64("particles", d.Condensate.Particles, "number of particles N")
	f.Int("levels", d.Condensate.Levels, "number of energy levels")
	f.Float64("spacing", d.Condensate.Spacing, "spacing between levels")
	addTemperatureFlags(f, d.Condensate.Temperature)
	f.Float64("guard", d.Solver.Guard, "distance kept between mu and the ground level")
	f.Float64("window", d.Solver.Window, "initial width of the mu bracket")
	f.Float64("widen-factor", d.Solver.WidenFactor, "bracket growth on retry")
	f.Int("max-retries", d.Solver.MaxRetries, "widened attempts after the first")
	f.Float64("rel-tol", d.Solver.RelTol, "accepted residual relative to N")
	f.String("output", d.Output.Condensate, "plot file")

	return cmd
}

func runCondensate(c *config.Config, logger *logrus.Logger) error {
	solver := chempot.NewSolver(c.Solver,
		rootfind.WithOnRetry(func(attempt int, b rootfind.Bracket, err error) {
			logger.WithFields(logrus.Fields{
				"attempt": attempt,
				"lo":      b.Lo,
				"hi":      b.Hi,
			}).WithError(err).Debug("widening bracket")
		}))

	builder := sweep.MakeBuilder().
		WithParams(c.Physics.Params()).
		WithParticleCount(c.Condensate.Particles).
		WithLevels(c.Condensate.EnergyLevels()).
		WithTemperatures(c.Condensate.Temperature.Grid()).
		WithSolver(solver).
		WithLogger(logger)

	rec, err := openRecording(c, logger)
	if err != nil {
		return err
	}

	if rec != nil {
		builder = builder.WithRecorder(
			sweep.NewTableRecorder(rec.recorder, sweep.SamplesTable))
	}

	analysis, err := builder.Build()
	if err != nil {
		rec.abort()
		return err
	}

	result, err := analysis.Run()
	if err != nil {
		rec.abort()
		return err
	}

	err = rec.finish(len(result.Samples), result.Failures)
	if err != nil {
		return err
	}

	path, err := outputPath(c, c.Output.Condensate)
	if err != nil {
		return err
	}

	err = plotting.Condensate(result, path)
	if err != nil {
		return err
	}

	plotWritten(c, logger, path)

	return nil
}
