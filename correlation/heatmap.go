package correlation

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

// Heatmap dimensions match the original report figure.
const (
	heatmapWidth  = 10 * vg.Inch
	heatmapHeight = 8 * vg.Inch
)

// SaveHeatmap renders the full correlation matrix as an annotated heatmap
// and writes it to path (format taken from the extension, e.g. .png).
// The color scale is a blue-red diverging map pinned to [-1, 1] and every
// cell is annotated with its coefficient to two decimals.
func SaveHeatmap(r *Result, path string) error {
	p := plot.New()
	p.Title.Text = "Корреляционная матрица"

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	hm := plotter.NewHeatMap(&matrixGrid{r}, colors.Palette(256))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	p.NominalX(r.Columns...)
	p.NominalY(r.Columns...)
	p.X.Tick.Label.Rotation = -1.2
	p.X.Tick.Label.XAlign = -0.5

	labels, err := cellLabels(r)
	if err != nil {
		return errors.Wrap(err, "correlation heatmap labels")
	}
	p.Add(labels)

	if err := p.Save(heatmapWidth, heatmapHeight, path); err != nil {
		return errors.Wrap(err, "save correlation heatmap")
	}
	return nil
}

// cellLabels annotates each cell with its coefficient, centered on the cell.
func cellLabels(r *Result) (*plotter.Labels, error) {
	n := len(r.Columns)
	xys := make(plotter.XYs, 0, n*n)
	texts := make([]string, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			texts = append(texts, fmt.Sprintf("%.2f", r.Matrix.At(i, j)))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = -0.5
		labels.TextStyle[i].YAlign = -0.5
	}
	return labels, nil
}

// matrixGrid adapts a Result to the plotter.GridXYZ interface.
type matrixGrid struct {
	r *Result
}

func (g *matrixGrid) Dims() (c, rows int) {
	n := len(g.r.Columns)
	return n, n
}

func (g *matrixGrid) Z(c, r int) float64 {
	return g.r.Matrix.At(r, c)
}

func (g *matrixGrid) X(c int) float64 {
	return float64(c)
}

func (g *matrixGrid) Y(r int) float64 {
	return float64(r)
}
