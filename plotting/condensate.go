package plotting

import (
	"os"

	"github.com/sarchlab/bosestat/sweep"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type panel struct {
	yLabel string
	value  func(sweep.Sample) float64
}

var condensatePanels = []panel{
	{"Negative Chemical Potential -mu", func(s sweep.Sample) float64 { return s.Mu }},
	{"Ground State Occupation <n0>", func(s sweep.Sample) float64 { return s.N0 }},
	{"log(<n0>)", func(s sweep.Sample) float64 { return s.LogN0 }},
	{"-d<n0>/dT", func(s sweep.Sample) float64 { return s.DN0DT }},
	{"Specific Heat Cv", func(s sweep.Sample) float64 { return s.SpecificHeat }},
}

// Condensate draws the five condensate quantities of a sweep on a 3x2 grid.
// The -d<n0>/dT and Cv panels plot the full implicit derivative of <n0>,
// including the beta*dmu/dbeta term of the moving chemical potential, so
// they match the slope of the <n0> panel rather than the fixed-mu formula.
func Condensate(r *sweep.Result, path string) error {
	ext, err := format(path)
	if err != nil {
		return err
	}

	temps := r.Temperatures()

	const rows, cols = 3, 2

	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
	}

	for i, pn := range condensatePanels {
		ys := r.Series(pn.value)
		if i == 0 || i == 3 {
			ys = negate(ys)
		}

		p := newPlot("", "Temperature T", pn.yLabel)

		err := addSeries(p, "", i, temps, ys)
		if err != nil {
			return err
		}

		plots[i/cols][i%cols] = p
	}

	c, err := draw.NewFormattedCanvas(14*vg.Inch, 16*vg.Inch, ext)
	if err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 10,
		PadY:      vg.Millimeter * 10,
		PadTop:    vg.Millimeter * 5,
		PadBottom: vg.Millimeter * 5,
		PadLeft:   vg.Millimeter * 5,
		PadRight:  vg.Millimeter * 5,
	}

	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		for j, p := range plots[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = c.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
