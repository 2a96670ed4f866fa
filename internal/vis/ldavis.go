//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"cmp"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/dtm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	jsoniter "github.com/json-iterator/go"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"io"
	"math"
	"slices"
)

var jsi = jsoniter.ConfigCompatibleWithStandardLibrary

// TopicCoord - where a topic sits on the intertopic distance map
type TopicCoord struct {
	Topic int     `json:"topic"` // 1-based, in order of prevalence
	Orig  int     `json:"orig"`  // 0-based index in the model
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Freq  float64 `json:"freq"` // percent of all tokens
}

// TermInfo - one bar of a relevance chart; Category is "Default" for the salient terms of the whole corpus
type TermInfo struct {
	Category  string  `json:"category"`
	Term      string  `json:"term"`
	Freq      float64 `json:"freq"`
	Total     float64 `json:"total"`
	LogProb   float64 `json:"logprob"`
	LogLift   float64 `json:"loglift"`
	Relevance float64 `json:"relevance"`
}

// PreparedData - everything the intertopic page needs
type PreparedData struct {
	Lambda           float64      `json:"lambda"`
	R                int          `json:"R"`
	TopicOrder       []int        `json:"topic.order"`
	TopicCoordinates []TopicCoord `json:"mdsDat"`
	TopicInfo        []TermInfo   `json:"tinfo"`
	DocLabels        []string     `json:"doc.labels"`
}

// Prepare - topic prevalence, intertopic distances, term relevance and saliency for a fitted model
func Prepare(ts str.TermSpace, bags []str.Bag, docLabels []string, lambda float64, r int) (*PreparedData, error) {
	const (
		FAIL1 = "%w: %d bags but %d document labels"
		FAIL2 = "%w: the topic-term matrix has %d terms but the vocabulary has %d"
		FAIL3 = "%w: the corpus has no tokens"
		FAIL4 = "lambda must lie in [0, 1]; got %f"
	)

	if len(bags) != len(docLabels) {
		return nil, fmt.Errorf(FAIL1, dtm.ErrShape, len(bags), len(docLabels))
	}
	if !(lambda >= 0 && lambda <= 1) {
		return nil, fmt.Errorf(FAIL4, lambda)
	}
	if r <= 0 {
		r = vv.RELEVANCETERMS
	}

	vocab := ts.Vocabulary()
	k, nv := ts.TopicTermMatrix().Dims()
	if nv != len(vocab) {
		return nil, fmt.Errorf(FAIL2, dtm.ErrShape, nv, len(vocab))
	}

	phi := make([][]float64, k)
	for t := 0; t < k; t++ {
		phi[t] = mat.Row(nil, t, ts.TopicTermMatrix())
	}

	// topic frequencies: sum_d len(d) p(t|d)
	tfreq := make([]float64, k)
	termcount := make([]float64, nv)
	for _, b := range bags {
		for _, tc := range b {
			if tc.ID >= 0 && tc.ID < nv {
				termcount[tc.ID] += tc.Count
			}
		}
		n := b.Len()
		if n == 0 {
			continue
		}
		tw, err := ts.DocumentTopics(b)
		if err != nil {
			return nil, err
		}
		z := 0.0
		for _, w := range tw {
			z += w.Weight
		}
		if z == 0 {
			continue
		}
		for _, w := range tw {
			if w.Topic >= 0 && w.Topic < k {
				tfreq[w.Topic] += n * w.Weight / z
			}
		}
	}

	ntok := floats.Sum(termcount)
	if ntok == 0 {
		return nil, fmt.Errorf(FAIL3, ErrEmpty)
	}
	tprop := slices.Clone(tfreq)
	if s := floats.Sum(tprop); s > 0 {
		floats.Scale(1/s, tprop)
	} else {
		for t := range tprop {
			tprop[t] = 1 / float64(k)
		}
	}

	order := make([]int, k)
	for t := range order {
		order[t] = t
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(tprop[b], tprop[a]) })

	xy := pcoa(jsdistances(phi))

	pd := &PreparedData{
		Lambda:     lambda,
		R:          r,
		TopicOrder: make([]int, k),
		DocLabels:  slices.Clone(docLabels),
	}
	for i, t := range order {
		pd.TopicOrder[i] = t + 1
		pd.TopicCoordinates = append(pd.TopicCoordinates, TopicCoord{
			Topic: i + 1,
			Orig:  t,
			X:     xy[t][0],
			Y:     xy[t][1],
			Freq:  100 * tprop[t],
		})
	}

	pw := slices.Clone(termcount)
	floats.Scale(1/ntok, pw)

	// the estimated count of each term in each topic, and their sum across topics
	ttfreq := make([][]float64, k)
	tterm := make([]float64, nv)
	for t := 0; t < k; t++ {
		ttfreq[t] = slices.Clone(phi[t])
		floats.Scale(tfreq[t], ttfreq[t])
		floats.Add(tterm, ttfreq[t])
	}

	pd.TopicInfo = append(pd.TopicInfo, salient(phi, tprop, pw, tterm, vocab, r)...)
	for i, t := range order {
		pd.TopicInfo = append(pd.TopicInfo, relevant(fmt.Sprintf("Topic%d", i+1), phi[t], pw, ttfreq[t], tterm, vocab, lambda, r)...)
	}

	return pd, nil
}

// jsdistances - pairwise Jensen-Shannon divergence between topics
func jsdistances(phi [][]float64) *mat.SymDense {
	k := len(phi)
	d := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d.SetSym(i, j, stat.JensenShannon(phi[i], phi[j]))
		}
	}
	return d
}

// pcoa - classical multidimensional scaling of a distance matrix down to two dimensions
func pcoa(d *mat.SymDense) [][2]float64 {
	k, _ := d.Dims()
	xy := make([][2]float64, k)
	if k < 2 {
		return xy
	}

	// B = -1/2 H D^2 H with H = I - 1/k
	b := mat.NewSymDense(k, nil)
	sq := func(i, j int) float64 { v := d.At(i, j); return v * v }
	rowmean := make([]float64, k)
	all := 0.0
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			rowmean[i] += sq(i, j)
		}
		all += rowmean[i]
		rowmean[i] /= float64(k)
	}
	all /= float64(k * k)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			b.SetSym(i, j, -0.5*(sq(i, j)-rowmean[i]-rowmean[j]+all))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(b, true); !ok {
		return xy
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// eigenvalues come back in ascending order
	for dim := 0; dim < 2 && dim < k; dim++ {
		c := k - 1 - dim
		ev := vals[c]
		if ev < 1e-12 {
			continue
		}
		s := math.Sqrt(ev)
		for i := 0; i < k; i++ {
			xy[i][dim] = s * vecs.At(i, c)
		}
	}
	return xy
}

// salient - the top r terms of the corpus by saliency p(w) * sum_t p(t|w) log(p(t|w)/p(t))
func salient(phi [][]float64, tprop, pw, tterm []float64, vocab []string, r int) []TermInfo {
	nv := len(vocab)
	sal := make([]float64, nv)
	for w := 0; w < nv; w++ {
		z := 0.0
		for t := range phi {
			z += phi[t][w]
		}
		if z == 0 || pw[w] == 0 {
			continue
		}
		dist := 0.0
		for t := range phi {
			ptw := phi[t][w] / z
			if ptw > 0 && tprop[t] > 0 {
				dist += ptw * math.Log(ptw/tprop[t])
			}
		}
		sal[w] = pw[w] * dist
	}

	idx := topindices(sal, r, func(w int) bool { return pw[w] > 0 })
	ti := make([]TermInfo, len(idx))
	for i, w := range idx {
		ti[i] = TermInfo{Category: "Default", Term: vocab[w], Freq: tterm[w], Total: tterm[w], Relevance: sal[w]}
	}
	return ti
}

// relevant - the top r terms of one topic by lambda log p(w|t) + (1-lambda) log(p(w|t)/p(w))
func relevant(cat string, phit, pw, ttfreq, tterm []float64, vocab []string, lambda float64, r int) []TermInfo {
	nv := len(vocab)
	rel := make([]float64, nv)
	lp := make([]float64, nv)
	ll := make([]float64, nv)
	for w := 0; w < nv; w++ {
		if phit[w] <= 0 || pw[w] <= 0 {
			continue
		}
		lp[w] = math.Log(phit[w])
		ll[w] = math.Log(phit[w] / pw[w])
		rel[w] = lambda*lp[w] + (1-lambda)*ll[w]
	}

	idx := topindices(rel, r, func(w int) bool { return phit[w] > 0 && pw[w] > 0 })
	ti := make([]TermInfo, len(idx))
	for i, w := range idx {
		ti[i] = TermInfo{
			Category:  cat,
			Term:      vocab[w],
			Freq:      ttfreq[w],
			Total:     tterm[w],
			LogProb:   lp[w],
			LogLift:   ll[w],
			Relevance: rel[w],
		}
	}
	return ti
}

// topindices - indices of the r largest scores among the admissible ones; ties keep index order
func topindices(score []float64, r int, ok func(int) bool) []int {
	var idx []int
	for i := range score {
		if ok(i) {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(score[b], score[a]) })
	if len(idx) > r {
		idx = idx[:r]
	}
	return idx
}

// Terms - the TermInfo rows of one category in descending order of relevance
func (pd *PreparedData) Terms(category string) []TermInfo {
	var ti []TermInfo
	for _, t := range pd.TopicInfo {
		if t.Category == category {
			ti = append(ti, t)
		}
	}
	return ti
}

// WriteJSON - the prepared data as indented json
func (pd *PreparedData) WriteJSON(w io.Writer) error {
	b, err := jsi.MarshalIndent(pd, "", vv.JSONINDENT)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Page - intertopic distance map followed by one relevance chart per topic
func (pd *PreparedData) Page(title string) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(title)
	page.AddCharts(pd.intertopicmap(title))
	page.AddCharts(pd.relevancebars("Default", "Top-%d most salient terms"))
	for _, tc := range pd.TopicCoordinates {
		page.AddCharts(pd.relevancebars(fmt.Sprintf("Topic%d", tc.Topic), fmt.Sprintf("Top-%%d most relevant terms for topic %d (%.1f%% of tokens)", tc.Topic, tc.Freq)))
	}
	return page
}

// WriteHTML - render Page to w
func (pd *PreparedData) WriteHTML(w io.Writer, title string) error {
	return pd.Page(title).Render(w)
}

func (pd *PreparedData) intertopicmap(title string) *charts.Scatter {
	const (
		MAXSYM = 80
		MINSYM = 8
	)

	top := 0.0
	for _, tc := range pd.TopicCoordinates {
		top = math.Max(top, tc.Freq)
	}

	data := make([]opts.ScatterData, len(pd.TopicCoordinates))
	for i, tc := range pd.TopicCoordinates {
		sz := MINSYM
		if top > 0 {
			// area, not radius, tracks prevalence
			sz = max(MINSYM, int(MAXSYM*math.Sqrt(tc.Freq/top)))
		}
		data[i] = opts.ScatterData{
			Name:       fmt.Sprintf("Topic %d", tc.Topic),
			Value:      []float64{tc.X, tc.Y},
			Symbol:     "circle",
			SymbolSize: sz,
		}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   vv.INTERACTIVEW,
			Height:  vv.INTERACTIVEH,
			ChartID: chartid(),
		}),
		charts.WithTitleOpts(opts.Title{Title: "Intertopic Distance Map", Subtitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "PC1", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "PC2", Scale: opts.Bool(true)}),
		charts.WithToolboxOpts(savebox("intertopic_distance_map")),
	)
	sc.AddSeries("topics", data)
	return sc
}

func (pd *PreparedData) relevancebars(category string, titlefmt string) *charts.Bar {
	ti := pd.Terms(category)
	slices.Reverse(ti)

	terms := make([]string, len(ti))
	total := make([]opts.BarData, len(ti))
	intopic := make([]opts.BarData, len(ti))
	for i, t := range ti {
		terms[i] = t.Term
		total[i] = opts.BarData{Value: t.Total}
		intopic[i] = opts.BarData{Value: t.Freq}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   vv.INTERACTIVEW,
			Height:  vv.INTERACTIVEH,
			ChartID: chartid(),
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(titlefmt, len(ti))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithGridOpts(opts.Grid{ContainLabel: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", AxisLabel: &opts.AxisLabel{Interval: "0"}}),
	)
	bar.SetXAxis(terms).
		AddSeries("Overall term frequency", total, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#9ecae1"})).
		AddSeries("Estimated term frequency within the topic", intopic, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#d62728"}))
	if category == "Default" {
		bar.MultiSeries = bar.MultiSeries[:1]
	}
	bar.XYReversal()
	return bar
}
