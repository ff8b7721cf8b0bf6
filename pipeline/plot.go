package pipeline

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// SaveLagProfilePlot renders the per-lag mean |ACC| profile as an SVG line
// plot. A quick visual check of how covariance signal decays with lag.
func SaveLagProfilePlot(filename string, profile []float64) error {
	p := plot.New()
	p.Title.Text = "Mean |ACC| per Lag"
	p.X.Label.Text = "Lag"
	p.Y.Label.Text = "Mean Absolute Covariance"
	p.X.Tick.Marker = IntegerTicks{}

	pts := make(plotter.XYs, len(profile))
	for i, val := range profile {
		pts[i].X = float64(i + 1)
		pts[i].Y = val
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Mean |ACC|", line)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", filename, err)
	}
	return nil
}
