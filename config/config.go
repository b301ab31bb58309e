// Package config holds the settings of every bosestat command and loads them
// from defaults, a YAML file, a .env file, BOSESTAT_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/bosestat/chempot"
	"github.com/sarchlab/bosestat/physics"
	"github.com/sarchlab/bosestat/rootfind"
	"github.com/sarchlab/bosestat/sweep"
)

// ErrInvalid indicates a setting that no command can run with.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the complete configuration.
type Config struct {
	Physics    Physics        `mapstructure:"physics" yaml:"physics"`
	TwoLevel   TwoLevel       `mapstructure:"twolevel" yaml:"twolevel"`
	Grand      Grand          `mapstructure:"grand" yaml:"grand"`
	Condensate Condensate     `mapstructure:"condensate" yaml:"condensate"`
	Solver     chempot.Config `mapstructure:"solver" yaml:"solver"`
	Output     Output         `mapstructure:"output" yaml:"output"`
	Log        Log            `mapstructure:"log" yaml:"log"`
}

// Physics holds the physical constants.
type Physics struct {
	KB      float64 `mapstructure:"kb" yaml:"kb"`
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`
}

// Params converts the constants for the physics package.
func (p Physics) Params() physics.Params {
	return physics.Params{KB: p.KB, Epsilon: p.Epsilon}
}

// Range is an evenly spaced temperature grid.
type Range struct {
	Min    float64 `mapstructure:"min" yaml:"min"`
	Max    float64 `mapstructure:"max" yaml:"max"`
	Points int     `mapstructure:"points" yaml:"points"`
}

// Grid returns the temperatures of the range.
func (r Range) Grid() []float64 {
	return sweep.Linspace(r.Min, r.Max, r.Points)
}

func (r Range) validate(section string) error {
	if !(r.Min > 0) || math.IsInf(r.Max, 0) || r.Max < r.Min {
		return fmt.Errorf("%w: %s temperature range [%g, %g]",
			ErrInvalid, section, r.Min, r.Max)
	}

	if r.Points < 1 {
		return fmt.Errorf("%w: %s temperature points %d",
			ErrInvalid, section, r.Points)
	}

	return nil
}

// TwoLevel configures the classical and quantum two-level curves.
type TwoLevel struct {
	Particles   float64 `mapstructure:"particles" yaml:"particles"`
	Temperature Range   `mapstructure:"temperature" yaml:"temperature"`
}

// Grand configures the grand two-level curve.
type Grand struct {
	Particles   float64 `mapstructure:"particles" yaml:"particles"`
	Temperature Range   `mapstructure:"temperature" yaml:"temperature"`
	MuLo        float64 `mapstructure:"mu_lo" yaml:"mu_lo"`
	MuHi        float64 `mapstructure:"mu_hi" yaml:"mu_hi"`
}

// Bracket returns the fixed search interval for mu.
func (g Grand) Bracket() rootfind.Bracket {
	return rootfind.Bracket{Lo: g.MuLo, Hi: g.MuHi}
}

// Condensate configures the many-level condensate sweep.
type Condensate struct {
	Particles   float64 `mapstructure:"particles" yaml:"particles"`
	Levels      int     `mapstructure:"levels" yaml:"levels"`
	Spacing     float64 `mapstructure:"spacing" yaml:"spacing"`
	Temperature Range   `mapstructure:"temperature" yaml:"temperature"`
}

// EnergyLevels returns the evenly spaced level set.
func (c Condensate) EnergyLevels() physics.Levels {
	return physics.EvenlySpaced(c.Levels, c.Spacing)
}

// Output configures where results go.
type Output struct {
	Dir        string `mapstructure:"dir" yaml:"dir"`
	Classical  string `mapstructure:"classical" yaml:"classical"`
	Quantum    string `mapstructure:"quantum" yaml:"quantum"`
	Grand      string `mapstructure:"grand" yaml:"grand"`
	Condensate string `mapstructure:"condensate" yaml:"condensate"`
	Record     bool   `mapstructure:"record" yaml:"record"`
	RecordPath string `mapstructure:"record_path" yaml:"record_path"`
	Show       bool   `mapstructure:"show" yaml:"show"`
}

// Log configures the logger.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the stock settings of every command.
func Default() Config {
	return Config{
		Physics: Physics{KB: 1, Epsilon: 1},
		TwoLevel: TwoLevel{
			Particles:   100,
			Temperature: Range{Min: 0.1, Max: 5, Points: 100},
		},
		Grand: Grand{
			Particles:   100000,
			Temperature: Range{Min: 0.5, Max: 5, Points: 100},
			MuLo:        sweep.DefaultGrandBracket.Lo,
			MuHi:        sweep.DefaultGrandBracket.Hi,
		},
		Condensate: Condensate{
			Particles:   100000,
			Levels:      100,
			Spacing:     0.1,
			Temperature: Range{Min: 0.1, Max: 100000, Points: 200},
		},
		Solver: chempot.DefaultConfig(),
		Output: Output{
			Dir:        ".",
			Classical:  "plot_c.png",
			Quantum:    "plot_e.png",
			Grand:      "plot_h.png",
			Condensate: "plot_bose_system.png",
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	err := c.Physics.Params().Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	err = c.validateCounts()
	if err != nil {
		return err
	}

	for section, r := range map[string]Range{
		"twolevel":   c.TwoLevel.Temperature,
		"grand":      c.Grand.Temperature,
		"condensate": c.Condensate.Temperature,
	} {
		err = r.validate(section)
		if err != nil {
			return err
		}
	}

	if !(c.Grand.MuLo < c.Grand.MuHi) {
		return fmt.Errorf("%w: grand mu bracket [%g, %g]",
			ErrInvalid, c.Grand.MuLo, c.Grand.MuHi)
	}

	if c.Condensate.Levels < 1 || !(c.Condensate.Spacing > 0) {
		return fmt.Errorf("%w: condensate needs at least one level and a positive spacing",
			ErrInvalid)
	}

	err = c.Solver.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return c.Log.validate()
}

func (c Config) validateCounts() error {
	for section, n := range map[string]float64{
		"twolevel":   c.TwoLevel.Particles,
		"grand":      c.Grand.Particles,
		"condensate": c.Condensate.Particles,
	} {
		if !(n > 0) || math.IsInf(n, 0) {
			return fmt.Errorf("%w: %s particle count %g", ErrInvalid, section, n)
		}
	}

	return nil
}

func (l Log) validate() error {
	_, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch l.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, l.Format)
	}
}

// Dump writes the configuration as YAML.
func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(c)
	if err != nil {
		return err
	}

	return enc.Close()
}
