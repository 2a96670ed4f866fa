//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"github.com/e-gun/HipparchiaLDAVis/internal/dtm"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"math"
)

// heatgrid - plotter.GridXYZ over a DocTopicMatrix; row 0 of the matrix is drawn at the top
type heatgrid struct {
	m *dtm.DocTopicMatrix
}

func (g heatgrid) Dims() (int, int) {
	r, c := g.m.Dims()
	return c, r
}

func (g heatgrid) Z(c, r int) float64 {
	nr, _ := g.m.Dims()
	return g.m.At(nr-1-r, c)
}

func (g heatgrid) X(c int) float64 { return float64(c) }
func (g heatgrid) Y(r int) float64 { return float64(r) }

// FigureSize - 20in x 20in once either axis holds more than HEATMAPENLARGE items
func FigureSize(rows, cols int) (vg.Length, vg.Length) {
	if rows > vv.HEATMAPENLARGE || cols > vv.HEATMAPENLARGE {
		return LARGEFIGW, LARGEFIGH
	}
	return DEFAULTFIGW, DEFAULTFIGH
}

// HeatmapFigure - rows on the Y axis reading downwards, columns on the X axis with labels turned 90 degrees
func HeatmapFigure(m *dtm.DocTopicMatrix) (*Figure, error) {
	pal, err := brewer.GetPalette(brewer.TypeSequential, "Reds", 9)
	if err != nil {
		return nil, err
	}

	rows, cols := m.Dims()
	g := heatgrid{m: m}
	hm := plotter.NewHeatMap(g, pal)

	// weights are proportions: anchor the bottom of the scale at zero
	hm.Min = 0
	if hm.Max <= 0 {
		hm.Max = 1
	}

	p := plot.New()
	p.Add(hm)

	rl := m.RowLabels()
	yt := make([]plot.Tick, rows)
	for r := 0; r < rows; r++ {
		yt[r] = plot.Tick{Value: float64(r), Label: rl[rows-1-r]}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yt)

	cl := m.ColLabels()
	xt := make([]plot.Tick, cols)
	for c := 0; c < cols; c++ {
		xt[c] = plot.Tick{Value: float64(c), Label: cl[c]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xt)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5

	w, h := FigureSize(rows, cols)
	return NewPlotFigure(p, w, h), nil
}

// DocTopicHeatmap - heatmap of documents (sorted by label) against topics whatever the orientation of m
func DocTopicHeatmap(m *dtm.DocTopicMatrix) (*Figure, error) {
	if m.Orientation() == dtm.TopicsByDocs {
		m = m.Transposed()
	}
	return HeatmapFigure(m.SortedByRowLabel())
}
