// Package chart renders the one-dimensional Schwefel component function
// with its located extrema overlaid. Output format follows the file
// extension (png, svg, pdf, ...).
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jvkersch/schwefel/extrema"
	"github.com/jvkersch/schwefel/schwefel"
)

// Config describes one rendering of the component function.
type Config struct {
	From, To float64            // Plotted interval
	Samples  int                // Number of sample points for the curve
	Extrema  []extrema.Extremum // Points to overlay; may be nil
	Title    string
	Output   string // Output filename; the extension selects the format
}

// DefaultConfig plots the full benchmark box with the k = 1..7 extrema
// overlaid.
func DefaultConfig() Config {
	table, _ := extrema.Table(7, nil)
	return Config{
		From:    -schwefel.Bound,
		To:      schwefel.Bound,
		Samples: 2000,
		Extrema: table,
		Title:   "f(x) = -x sin(sqrt(|x|))",
		Output:  "schwefel.png",
	}
}

// Render draws the function curve and extrema overlay and writes the result
// to cfg.Output.
func Render(cfg Config) error {
	if cfg.Samples < 2 {
		return fmt.Errorf("chart: need at least 2 samples, got %d", cfg.Samples)
	}
	if cfg.To <= cfg.From {
		return fmt.Errorf("chart: empty interval [%g, %g]", cfg.From, cfg.To)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	xs, ys := schwefel.Sample(cfg.From, cfg.To, cfg.Samples)
	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i].X = xs[i]
		curve[i].Y = ys[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return fmt.Errorf("chart: building curve: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("f(x)", line)

	if len(cfg.Extrema) > 0 {
		pts := make(plotter.XYs, len(cfg.Extrema))
		for i, e := range cfg.Extrema {
			pts[i].X = e.X
			pts[i].Y = e.F
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("chart: building overlay: %w", err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(1)
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = plotutil.Shape(1)
		p.Add(scatter)
		p.Legend.Add("extrema", scatter)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, cfg.Output); err != nil {
		return fmt.Errorf("chart: saving %s: %w", cfg.Output, err)
	}
	return nil
}
