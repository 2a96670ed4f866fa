//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/dtm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"image/color"
)

// PlotDocTopics - horizontal bars for the nonzero topics of one document, lightest at the bottom
func PlotDocTopics(m *dtm.DocTopicMatrix, doc int) (*Figure, error) {
	const (
		FAIL1 = "%w: document %d ('%s') has no topic weights"
		XLAB  = "Proportion"
		YLAB  = "Topic"
	)

	lw, err := m.DocumentTopics(doc)
	if err != nil {
		return nil, err
	}
	title := m.DocLabels()[doc]
	if len(lw) == 0 {
		return nil, fmt.Errorf(FAIL1, ErrEmpty, doc, title)
	}

	vals := make(plotter.Values, len(lw))
	labels := make([]string, len(lw))
	for i := range lw {
		vals[i] = lw[i].Weight
		labels[i] = lw[i].Label
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = XLAB
	p.Y.Label.Text = YLAB
	p.X.Min = 0
	p.Add(bars)
	p.NominalY(labels...)

	return NewPlotFigure(p, DEFAULTFIGW, DEFAULTFIGH), nil
}
