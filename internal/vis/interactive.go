//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/dtm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"strings"
)

// the blues that the static heatmap's web sibling has always used
var interactiveblues = []string{"#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"}

// chartid - echarts wants an id that is also a legal js identifier
func chartid() string {
	return "hlv" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// savebox - the toolbox "save as image" button
func savebox(name string) opts.Toolbox {
	const (
		SAVETYPE = "png"
		SAVESTR  = "Save to file..."
	)

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  opts.Bool(true),
		Type:  SAVETYPE,
		Name:  name,
		Title: SAVESTR, // get chinese if ""
	}

	return opts.Toolbox{
		Show:    opts.Bool(true),
		Orient:  "vertical",
		Right:   "20",
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}
}

// DocTopicHeatmapInteractive - documents down the side, topics along the top, hover for the score
func DocTopicHeatmapInteractive(m *dtm.DocTopicMatrix, title string) *charts.HeatMap {
	const (
		TOOLTIP = `function (p) { var tl = %s; return 'Document: ' + p.name + '<br>Topic: ' + tl[p.value[0]] + '<br>Score: ' + p.value[2].toFixed(4); }`
	)

	if m.Orientation() == dtm.TopicsByDocs {
		m = m.Transposed()
	}
	m = m.SortedByRowLabel()

	docs := m.RowLabels()
	topics := m.ColLabels()
	rows, cols := m.Dims()

	var hi float32
	data := make([]opts.HeatMapData, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			if float32(v) > hi {
				hi = float32(v)
			}
			data = append(data, opts.HeatMapData{Name: docs[r], Value: [3]interface{}{c, r, v}})
		}
	}
	if hi == 0 {
		hi = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   vv.INTERACTIVEW,
			Height:  vv.INTERACTIVEH,
			ChartID: chartid(),
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(fmt.Sprintf(TOOLTIP, jsarray(topics))),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      topics,
			AxisLabel: &opts.AxisLabel{Rotate: 90, Interval: "0"},
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      docs,
			Inverse:   opts.Bool(true),
			AxisLabel: &opts.AxisLabel{Interval: "0"},
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithGridOpts(opts.Grid{Left: "3%", Right: "8%", Bottom: "3%", ContainLabel: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        hi,
			Orient:     "vertical",
			Right:      "0",
			Top:        "center",
			InRange:    &opts.VisualMapInRange{Color: interactiveblues},
		}),
		charts.WithToolboxOpts(savebox("doc_topic_heatmap")),
	)
	hm.AddSeries("Score", data)
	return hm
}

// jsarray - the formatter only sees [x, y, v]; the topic labels ride along as a js literal
func jsarray(ss []string) string {
	b, err := jsi.Marshal(ss)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// WordCloudChart - an interactive word cloud; ColorRandom leaves the coloring to echarts
func WordCloudChart(tw []str.TermWeight, title string, o WordleOpts) *charts.WordCloud {
	data := make([]opts.WordCloudData, 0, len(tw))
	for _, w := range tw {
		if w.Weight <= 0 {
			continue
		}
		data = append(data, opts.WordCloudData{Name: w.Term, Value: w.Weight})
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   fmt.Sprintf("%dpx", o.Width),
			Height:  fmt.Sprintf("%dpx", o.Height),
			ChartID: chartid(),
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	clr := ""
	if o.Mode == ColorFixed {
		clr = o.ColorScale()
	}

	wc.AddSeries(title, data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			Shape:         "circle",
			SizeRange:     []float32{10, 60},
			RotationRange: []float32{0, 0},
		}),
		charts.WithSeriesOpts(func(s *charts.SingleSeries) {
			// an empty color makes go-echarts inject its random palette
			s.TextStyle = &opts.TextStyle{Normal: &opts.TextStyle{Color: clr}}
		}),
	)
	return wc
}
