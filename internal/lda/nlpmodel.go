//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/nlp"
	"golang.org/x/exp/rand"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"slices"
	"time"
)

//see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the LatentDirichletAllocation defaults

// Model - an LDA model fitted by the nlp pipeline
type Model struct {
	vectoriser *nlp.CountVectoriser
	lda        *nlp.LatentDirichletAllocation
	vocab      []string
	phi        *mat.Dense
	MinProb    float64
}

// Fit - vectorise the corpus, fit k topics, and return the model together with the corpus as bags of words
func Fit(docs []string, stops []string, cfg str.LDAConfig, m *mm.MessageMaker) (*Model, []str.Bag, error) {
	const (
		FAIL1 = "%w: cannot fit %d topics to %d documents"
		FAIL2 = "failed to model topics for documents: %w"
		FAIL3 = "failed to vectorise documents: %w"
		MSG1  = "fitting %d topics to %d documents (%d iterations, %d goroutines)"
		MSG2  = "vocabulary of %d terms"
		MSG3  = "model fitted"
	)

	if len(docs) == 0 || cfg.Topics < 1 {
		return nil, nil, fmt.Errorf(FAIL1, ErrEmptyModel, cfg.Topics, len(docs))
	}

	start := time.Now()
	previous := time.Now()

	pp := message.NewPrinter(language.English)
	m.FYI(pp.Sprintf(MSG1, cfg.Topics, len(docs), cfg.Iterations, cfg.Goroutines))

	vectoriser := nlp.NewCountVectoriser(stops...)

	lda := nlp.NewLatentDirichletAllocation(cfg.Topics)
	if cfg.Goroutines > 0 {
		lda.Processes = cfg.Goroutines
	}
	if cfg.Iterations > 0 {
		lda.Iterations = cfg.Iterations
	}
	if cfg.XformPasses > 0 {
		lda.TransformationPasses = cfg.XformPasses
	}
	if cfg.BurnInPasses > 0 {
		lda.BurnInPasses = cfg.BurnInPasses
	}
	if cfg.ChangeEvalFrq > 0 {
		lda.ChangeEvaluationFrequency = cfg.ChangeEvalFrq
	}
	if cfg.PerplexEvalFrq > 0 {
		lda.PerplexityEvaluationFrequency = cfg.PerplexEvalFrq
	}
	if cfg.PerplexTol > 0 {
		lda.PerplexityTolerance = cfg.PerplexTol
	}
	lda.Rnd = rand.New(rand.NewSource(cfg.Seed))

	pipeline := nlp.NewPipeline(vectoriser, lda)

	if _, err := pipeline.FitTransform(docs...); err != nil {
		return nil, nil, fmt.Errorf(FAIL2, err)
	}

	m.Timer("A1", MSG3, start, previous)
	previous = time.Now()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}
	m.PEEK(pp.Sprintf(MSG2, len(vocab)))

	tdm, err := vectoriser.Transform(docs...)
	if err != nil {
		return nil, nil, fmt.Errorf(FAIL3, err)
	}

	md := &Model{
		vectoriser: vectoriser,
		lda:        lda,
		vocab:      vocab,
		phi:        normalizerows(lda.Components()),
		MinProb:    cfg.MinProbability,
	}

	bags := BagsFromTermDocMatrix(tdm)
	m.Timer("A2", fmt.Sprintf("%d documents bagged", len(bags)), start, previous)
	return md, bags, nil
}

// BagsFromTermDocMatrix - split a terms x documents count matrix into one bag per document
func BagsFromTermDocMatrix(tdm mat.Matrix) []str.Bag {
	r, c := tdm.Dims()
	bags := make([]str.Bag, c)

	if nz, ok := tdm.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			bags[j] = append(bags[j], str.TermCount{ID: i, Count: v})
		})
		for j := range bags {
			slices.SortFunc(bags[j], func(a, b str.TermCount) int { return a.ID - b.ID })
		}
		return bags
	}

	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := tdm.At(i, j); v != 0 {
				bags[j] = append(bags[j], str.TermCount{ID: i, Count: v})
			}
		}
	}
	return bags
}

func (md *Model) NumTopics() int {
	r, _ := md.phi.Dims()
	return r
}

func (md *Model) Vocabulary() []string { return slices.Clone(md.vocab) }

func (md *Model) TopicTermMatrix() mat.Matrix { return md.phi }

// DocumentTopics - ask the fitted model for the topic mixture of one bag
func (md *Model) DocumentTopics(b str.Bag) ([]str.TopicWeight, error) {
	v := mat.NewDense(len(md.vocab), 1, nil)
	for _, tc := range b {
		if tc.ID < 0 || tc.ID >= len(md.vocab) {
			return nil, fmt.Errorf("term id %d outside of a vocabulary of %d", tc.ID, len(md.vocab))
		}
		v.Set(tc.ID, 0, tc.Count)
	}

	dt, err := md.lda.Transform(v)
	if err != nil {
		return nil, err
	}

	k, _ := dt.Dims()
	theta := make([]float64, k)
	for t := 0; t < k; t++ {
		theta[t] = dt.At(t, 0)
	}
	return normalizeandcut(theta, md.MinProb), nil
}

// DocumentTopicsForText - vectorise raw text with the fitted vocabulary and query the model
func (md *Model) DocumentTopicsForText(text string) ([]str.TopicWeight, error) {
	tdm, err := md.vectoriser.Transform(text)
	if err != nil {
		return nil, err
	}
	return md.DocumentTopics(BagsFromTermDocMatrix(tdm)[0])
}

func (md *Model) ShowTopic(topic, topn int) ([]str.TermWeight, error) {
	return showtopic(md.phi, md.vocab, topic, topn)
}

// normalizerows - copy of a topics x words matrix with every row summing to 1
func normalizerows(tw mat.Matrix) *mat.Dense {
	d := mat.DenseCopyOf(tw)
	r, _ := d.Dims()
	for i := 0; i < r; i++ {
		row := d.RawRowView(i)
		if s := floats.Sum(row); s > 0 {
			floats.Scale(1/s, row)
		}
	}
	return d
}
