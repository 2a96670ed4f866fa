//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/dtm"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"github.com/go-echarts/go-echarts/v2/components"
	"path/filepath"
	"time"
)

// SaveOpts - name, format and resolution of a static figure
type SaveOpts struct {
	Filename string
	Ext      string
	DPI      int
}

// DefaultSaveOpts - heatmap.png at 200 dpi
func DefaultSaveOpts() SaveOpts {
	return SaveOpts{Filename: vv.HEATMAPFILE, Ext: vv.HEATMAPEXT, DPI: vv.HEATMAPDPI}
}

// Visualization - a fitted model, the corpus it was queried with, and whatever has been built from them so far
type Visualization struct {
	model  str.TopicModel
	bags   []str.Bag
	labels []string
	log    *mm.MessageMaker

	Lambda float64
	R      int
	Title  string

	matrix      *dtm.DocTopicMatrix
	heatmap     *Figure
	interactive *PreparedData
}

// Option - functional option for NewVisualization
type Option func(*Visualization)

// WithRelevance - lambda and the number of terms per topic on the interactive page
func WithRelevance(lambda float64, r int) Option {
	return func(v *Visualization) {
		v.Lambda = lambda
		v.R = r
	}
}

// WithTitle - page title of the interactive output
func WithTitle(t string) Option {
	return func(v *Visualization) { v.Title = t }
}

// NewVisualization - nothing is computed until one of the Make*() calls
func NewVisualization(model str.TopicModel, bags []str.Bag, docLabels []string, m *mm.MessageMaker, o ...Option) (*Visualization, error) {
	const (
		FAIL1 = "%w: %d documents but %d document labels"
		FAIL2 = "%w: no model"
	)
	if model == nil {
		return nil, fmt.Errorf(FAIL2, ErrEmpty)
	}
	if len(bags) != len(docLabels) {
		return nil, fmt.Errorf(FAIL1, dtm.ErrShape, len(bags), len(docLabels))
	}
	if m == nil {
		m = mm.NewSilentMessageMaker()
	}

	v := &Visualization{
		model:  model,
		bags:   bags,
		labels: docLabels,
		log:    m,
		Lambda: vv.RELEVANCELAMBDA,
		R:      vv.RELEVANCETERMS,
		Title:  vv.INTERACTIVEFILE,
	}
	for _, opt := range o {
		opt(v)
	}
	return v, nil
}

// Matrix - the documents x topics matrix once MakeHeatmap() has run; nil before
func (v *Visualization) Matrix() *dtm.DocTopicMatrix { return v.matrix }

// MakeHeatmap - query the model for every document and draw the document/topic heatmap
func (v *Visualization) MakeHeatmap() error {
	start := time.Now()
	v.log.FYI("Accessing topic distribution and topic probability...")

	m, err := dtm.FromModel(v.model, v.bags, v.labels)
	if err != nil {
		return err
	}
	v.log.Timer("A", fmt.Sprintf("%d x %d matrix built", m.NumDocs(), v.model.NumTopics()), start, start)

	fig, err := DocTopicHeatmap(m)
	if err != nil {
		return err
	}

	v.matrix = m
	v.heatmap = fig
	v.log.PEEK("Heatmap figure available.")
	return nil
}

// SaveHeatmap - write path/Filename.Ext
func (v *Visualization) SaveHeatmap(path string, o SaveOpts) error {
	const (
		FAIL1 = "%w: call MakeHeatmap() before SaveHeatmap()"
		MSG1  = "Heatmap figure available at %s"
	)

	if v.heatmap == nil {
		err := fmt.Errorf(FAIL1, ErrNotBuilt)
		v.log.CRIT(err.Error())
		return err
	}
	o = fillsaveopts(o)

	fn := filepath.Join(path, o.Filename+"."+o.Ext)
	v.log.FYI("Saving heatmap figure...")
	if err := v.heatmap.Save(fn, o.Ext, o.DPI); err != nil {
		return v.skipped(err)
	}
	v.log.PEEK(fmt.Sprintf(MSG1, fn))
	return nil
}

// SaveDocTopics - bar chart of one document's topics as path/Filename.Ext
func (v *Visualization) SaveDocTopics(path string, doc int, o SaveOpts) error {
	const (
		FAIL1 = "%w: call MakeHeatmap() before SaveDocTopics()"
	)

	if v.matrix == nil {
		return fmt.Errorf(FAIL1, ErrNotBuilt)
	}
	o = fillsaveopts(o)

	fig, err := PlotDocTopics(v.matrix, doc)
	if err != nil {
		return err
	}
	fn := filepath.Join(path, o.Filename+"."+o.Ext)
	if err = fig.Save(fn, o.Ext, o.DPI); err != nil {
		return v.skipped(err)
	}
	v.log.PEEK(fmt.Sprintf("Topics of '%s' available at %s", v.labels[doc], fn))
	return nil
}

// SaveWordles - wordle_tp###.png for every topic plus one page holding their interactive versions
func (v *Visualization) SaveWordles(path string, words int, o WordleOpts, dpi int) ([]string, error) {
	var saved []string
	var clouds []components.Charter
	for t := 0; t < v.model.NumTopics(); t++ {
		tw, err := v.model.ShowTopic(t, words)
		if err != nil {
			return saved, fmt.Errorf("topic %d: %w", t, err)
		}

		fig, err := topicwordle(tw, t, o)
		if errors.Is(err, ErrEmpty) {
			v.log.WARN(fmt.Sprintf("topic %d has nothing to draw", t))
			continue
		}
		if err != nil {
			return saved, err
		}

		fn := filepath.Join(path, WordleFileName(t))
		if err = fig.Save(fn, "png", dpi); err != nil {
			return saved, v.skipped(err)
		}
		saved = append(saved, fn)
		clouds = append(clouds, WordCloudChart(tw, fmt.Sprintf("Topic #%d", t+1), o))
	}

	if len(clouds) == 0 {
		return saved, nil
	}

	fn := filepath.Join(path, "wordles.html")
	out, err := createoutput(fn)
	if err != nil {
		return saved, v.skipped(err)
	}
	page := components.NewPage().SetPageTitle("wordles")
	page.AddCharts(clouds...)
	if err = page.Render(out); err != nil {
		_ = out.Close()
		return saved, err
	}
	if err = out.Close(); err != nil {
		return saved, err
	}
	v.log.PEEK(fmt.Sprintf("%d word clouds available in %s", len(saved), path))
	return append(saved, fn), nil
}

// MakeInteractive - prepare intertopic distances and term relevance; the model has to expose its topic-term matrix
func (v *Visualization) MakeInteractive() error {
	const (
		FAIL1 = "%w: %T cannot supply a topic-term matrix"
	)

	ts, ok := v.model.(str.TermSpace)
	if !ok {
		return fmt.Errorf(FAIL1, ErrEmpty, v.model)
	}

	start := time.Now()
	v.log.FYI("Accessing model, corpus and dictionary...")
	pd, err := Prepare(ts, v.bags, v.labels, v.Lambda, v.R)
	if err != nil {
		return err
	}
	v.interactive = pd
	v.log.Timer("B", "Interactive visualization available.", start, start)
	return nil
}

// Prepared - the interactive data once MakeInteractive() has run; nil before
func (v *Visualization) Prepared() *PreparedData { return v.interactive }

// SaveInteractive - path/corpus_interactive.html and path/corpus_interactive.json
func (v *Visualization) SaveInteractive(path string) error {
	const (
		FAIL1 = "%w: call MakeInteractive() before SaveInteractive()"
		MSG1  = "Interactive visualization available at %s and %s"
	)

	if v.interactive == nil {
		err := fmt.Errorf(FAIL1, ErrNotBuilt)
		v.log.CRIT(err.Error())
		return err
	}
	v.log.FYI("Saving interactive visualization...")

	hfn := filepath.Join(path, vv.INTERACTIVEFILE+".html")
	jfn := filepath.Join(path, vv.INTERACTIVEFILE+".json")

	hf, err := createoutput(hfn)
	if err != nil {
		return v.skipped(err)
	}
	if err = v.interactive.WriteHTML(hf, v.Title); err != nil {
		_ = hf.Close()
		return err
	}
	if err = hf.Close(); err != nil {
		return err
	}

	jf, err := createoutput(jfn)
	if err != nil {
		return v.skipped(err)
	}
	if err = v.interactive.WriteJSON(jf); err != nil {
		_ = jf.Close()
		return err
	}
	if err = jf.Close(); err != nil {
		return err
	}

	v.log.PEEK(fmt.Sprintf(MSG1, hfn, jfn))
	return nil
}

// skipped - warn about a save that found no place to go; everything else passes through untouched
func (v *Visualization) skipped(err error) error {
	if errors.Is(err, ErrSaveSkipped) {
		v.log.WARN(err.Error())
	}
	return err
}

func fillsaveopts(o SaveOpts) SaveOpts {
	d := DefaultSaveOpts()
	if o.Filename == "" {
		o.Filename = d.Filename
	}
	if o.Ext == "" {
		o.Ext = d.Ext
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	return o
}
