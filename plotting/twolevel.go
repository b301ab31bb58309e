package plotting

import (
	"github.com/sarchlab/bosestat/sweep"
	"gonum.org/v1/plot/vg"
)

// Occupation draws the ground and excited occupations of a two-level curve.
func Occupation(c sweep.OccupationCurve, title, path string) error {
	p := newPlot(title, "Temperature (T)", "Average Occupation Number")

	err := addSeries(p, "<n0> (Ground State)", 0, c.Temperatures, c.Ground)
	if err != nil {
		return err
	}

	err = addSeries(p, "<n_eps> (Excited State)", 1, c.Temperatures, c.Excited)
	if err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 5*vg.Inch, path)
}

// GroundState draws the ground occupation of the grand two-level model.
// Temperatures without a solution are left as gaps.
func GroundState(c sweep.GroundCurve, path string) error {
	p := newPlot("Ground State Occupation vs Temperature",
		"Temperature (T)", "Average Ground State Occupation <n0>")

	err := addSeries(p, "<n0> (Ground State)", 0, c.Temperatures, c.Ground)
	if err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 5*vg.Inch, path)
}
