package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/bosestat/config"
	"github.com/sarchlab/bosestat/physics"
	"github.com/sarchlab/bosestat/plotting"
	"github.com/sarchlab/bosestat/sweep"
)

// occupationPoint is one exported row of a two-level curve.
type occupationPoint struct {
	Step        int
	Temperature float64
	Ground      float64
	Excited     float64
}

// groundPoint is one exported row of the grand two-level curve.
type groundPoint struct {
	Step        int
	Temperature float64
	Mu          float64
	Ground      float64
}

const curveTable = "curve"

type twoLevelModel struct {
	use, short, title string
	curve             func(physics.Params, float64, []float64) sweep.OccupationCurve
	output            func(config.Output) string
	outputKey         string
}

func newTwoLevelCmd(m twoLevelModel) *cobra.Command {
	d := config.Default()

	cmd := &cobra.Command{
		Use:   m.use,
		Short: m.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindings := append(temperatureBindings("twolevel"),
				binding{"twolevel.particles", "particles"},
				binding{m.outputKey, "output"},
			)

			c, logger, err := loadConfig(cmd, bindings)
			if err != nil {
				return err
			}

			return runTwoLevel(c, logger, m)
		},
	}

	f := cmd.Flags()
	f.Float64("particles", d.TwoLevel.Particles, "number of particles N")
	addTemperatureFlags(f, d.TwoLevel.Temperature)
	f.String("output", m.output(d.Output), "plot file")

	return cmd
}

func runTwoLevel(
	c *config.Config,
	logger *logrus.Logger,
	m twoLevelModel,
) error {
	temps := c.TwoLevel.Temperature.Grid()
	curve := m.curve(c.Physics.Params(), c.TwoLevel.Particles, temps)

	logger.WithFields(logrus.Fields{
		"model":        m.use,
		"particles":    c.TwoLevel.Particles,
		"temperatures": len(temps),
	}).Info("two-level curve computed")

	rec, err := openRecording(c, logger)
	if err != nil {
		return err
	}

	if rec != nil {
		rec.recorder.CreateTable(curveTable, occupationPoint{})

		for i, t := range curve.Temperatures {
			rec.recorder.InsertData(curveTable, occupationPoint{
				Step:        i,
				Temperature: t,
				Ground:      curve.Ground[i],
				Excited:     curve.Excited[i],
			})
		}
	}

	err = rec.finish(len(temps), 0)
	if err != nil {
		return err
	}

	path, err := outputPath(c, m.output(c.Output))
	if err != nil {
		return err
	}

	err = plotting.Occupation(curve, m.title, path)
	if err != nil {
		return err
	}

	plotWritten(c, logger, path)

	return nil
}

func newClassicalCmd() *cobra.Command {
	return newTwoLevelCmd(twoLevelModel{
		use:       "classical",
		short:     "Occupations of distinguishable particles over two levels.",
		title:     "Occupation Numbers vs Temperature (Classical Case)",
		curve:     sweep.ClassicalTwoLevel,
		output:    func(o config.Output) string { return o.Classical },
		outputKey: "output.classical",
	})
}

func newQuantumCmd() *cobra.Command {
	return newTwoLevelCmd(twoLevelModel{
		use:       "quantum",
		short:     "Occupations of bosons over two levels.",
		title:     "Occupation Numbers vs Temperature (Quantum Case)",
		curve:     sweep.QuantumTwoLevel,
		output:    func(o config.Output) string { return o.Quantum },
		outputKey: "output.quantum",
	})
}

func newGrandCmd() *cobra.Command {
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "grand",
		Short: "Ground occupation of the grand-canonical two-level model.",
		Long: `Solves the grand-canonical mean particle count of the two-level ` +
			`model for the chemical potential in a fixed interval. ` +
			`Temperatures without a solution in the interval are left as gaps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindings := append(temperatureBindings("grand"),
				binding{"grand.particles", "particles"},
				binding{"grand.mu_lo", "mu-lo"},
				binding{"grand.mu_hi", "mu-hi"},
				binding{"output.grand", "output"},
			)

			c, logger, err := loadConfig(cmd, bindings)
			if err != nil {
				return err
			}

			return runGrand(c, logger)
		},
	}

	f := cmd.Flags()
	f.Float64("particles", d.Grand.Particles, "mean number of particles N")
	addTemperatureFlags(f, d.Grand.Temperature)
	f.Float64("mu-lo", d.Grand.MuLo, "lower end of the mu interval")
	f.Float64("mu-hi", d.Grand.MuHi, "upper end of the mu interval")
	f.String("output", d.Output.Grand, "plot file")

	return cmd
}

func runGrand(c *config.Config, logger *logrus.Logger) error {
	temps := c.Grand.Temperature.Grid()
	curve := sweep.GrandTwoLevel(c.Physics.Params(), c.Grand.Particles,
		temps, c.Grand.Bracket(), logger)

	logger.WithFields(logrus.Fields{
		"particles":    c.Grand.Particles,
		"temperatures": len(temps),
		"failures":     curve.Failures,
	}).Info("grand two-level curve computed")

	rec, err := openRecording(c, logger)
	if err != nil {
		return err
	}

	if rec != nil {
		rec.recorder.CreateTable(curveTable, groundPoint{})

		for i, t := range curve.Temperatures {
			rec.recorder.InsertData(curveTable, groundPoint{
				Step:        i,
				Temperature: t,
				Mu:          curve.Mu[i],
				Ground:      curve.Ground[i],
			})
		}
	}

	err = rec.finish(len(temps), curve.Failures)
	if err != nil {
		return err
	}

	path, err := outputPath(c, c.Output.Grand)
	if err != nil {
		return err
	}

	err = plotting.GroundState(curve, path)
	if err != nil {
		return err
	}

	plotWritten(c, logger, path)

	return nil
}
