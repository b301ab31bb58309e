// Package cmd provides the command-line interface of bosestat.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/bosestat/config"
)

// NewRootCommand creates the bosestat command tree.
func NewRootCommand() *cobra.Command {
	d := config.Default()

	root := &cobra.Command{
		Use:   "bosestat",
		Short: "bosestat computes the statistics of non-interacting bosons.",
		Long: `bosestat computes the statistics of non-interacting bosons. ` +
			`It draws the two-level occupation curves and sweeps a many-level ` +
			`gas over temperature to follow the ground-state occupation.`,
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.String("config", "", "YAML configuration file")
	f.String("env-file", "", "file with BOSESTAT_* variables (default .env if present)")
	f.Float64("kb", d.Physics.KB, "Boltzmann constant")
	f.Float64("epsilon", d.Physics.Epsilon, "energy of the excited level")
	f.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	f.String("log-format", d.Log.Format, "log format (text or json)")
	f.String("output-dir", d.Output.Dir, "directory for plots and exports")
	f.Bool("record", d.Output.Record, "export the computed values to SQLite")
	f.String("record-path", d.Output.RecordPath,
		"SQLite file name without extension (default bosestat_<id>)")
	f.Bool("show", d.Output.Show, "open the plot after writing it")

	root.AddCommand(
		newClassicalCmd(),
		newQuantumCmd(),
		newGrandCmd(),
		newCondensateCmd(),
		newConfigCmd(),
	)

	return root
}

// Execute runs the command line and exits. Exit handlers, such as the flush
// of an open export, run before the process ends.
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// binding ties a configuration key to a flag name.
type binding struct {
	key  string
	flag string
}

var persistentBindings = []binding{
	{"physics.kb", "kb"},
	{"physics.epsilon", "epsilon"},
	{"log.level", "log-level"},
	{"log.format", "log-format"},
	{"output.dir", "output-dir"},
	{"output.record", "record"},
	{"output.record_path", "record-path"},
	{"output.show", "show"},
}

func temperatureBindings(section string) []binding {
	return []binding{
		{section + ".temperature.min", "t-min"},
		{section + ".temperature.max", "t-max"},
		{section + ".temperature.points", "points"},
	}
}

func addTemperatureFlags(f *pflag.FlagSet, r config.Range) {
	f.Float64("t-min", r.Min, "lowest temperature")
	f.Float64("t-max", r.Max, "highest temperature")
	f.Int("points", r.Points, "number of temperatures")
}

// loadConfig layers the configuration sources for the running command and
// creates its logger.
func loadConfig(
	cmd *cobra.Command,
	bindings []binding,
) (*config.Config, *logrus.Logger, error) {
	l, err := config.NewLoader()
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()

	for _, b := range append(persistentBindings, bindings...) {
		err = l.BindFlag(b.key, flags.Lookup(b.flag))
		if err != nil {
			return nil, nil, err
		}
	}

	file, _ := flags.GetString("config")
	l.SetConfigFile(file)

	envFile, _ := flags.GetString("env-file")
	l.SetEnvFile(envFile)

	c, err := l.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := setupLogger(c.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logger: %w", err)
	}

	return c, logger, nil
}
