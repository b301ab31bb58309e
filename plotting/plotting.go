// Package plotting renders sweep results as image files. The output format
// follows the file extension: .png, .jpg, .tif, .svg, .pdf or .eps.
package plotting

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrUnsupportedFormat is returned for a path whose extension does not name
// an image format.
var ErrUnsupportedFormat = errors.New("plotting: unsupported format")

const lineWidth vg.Length = 2

func format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps":
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	return p
}

// segments splits a series at non-finite points so that each returned run
// can be drawn as one unbroken line.
func segments(xs, ys []float64) []plotter.XYs {
	var (
		runs []plotter.XYs
		cur  plotter.XYs
	)

	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}

			continue
		}

		cur = append(cur, plotter.XY{X: xs[i], Y: ys[i]})
	}

	if len(cur) > 0 {
		runs = append(runs, cur)
	}

	return runs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// addSeries draws one named series with the i-th palette color. Gaps in the
// data split the series; the legend shows it once.
func addSeries(p *plot.Plot, name string, i int, xs, ys []float64) error {
	legend := name != ""

	for _, run := range segments(xs, ys) {
		l, err := plotter.NewLine(run)
		if err != nil {
			return err
		}

		l.LineStyle.Width = lineWidth
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)

		if legend {
			p.Legend.Add(name, l)
			legend = false
		}
	}

	return nil
}

func save(p *plot.Plot, w, h vg.Length, path string) error {
	_, err := format(path)
	if err != nil {
		return err
	}

	return p.Save(w, h, path)
}

func negate(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = -v
	}

	return out
}
