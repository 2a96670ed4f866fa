//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"slices"
)

var (
	ErrNoSuchTopic = errors.New("no such topic")
	ErrEmptyModel  = errors.New("empty model")
)

// Static - a fitted model held as a plain topic-term table; documents are folded in with one E-step
type Static struct {
	vocab   []string
	phi     *mat.Dense
	MinProb float64
}

// NewStatic - build a Static model; each row of weights is a topic and is normalized to sum to 1
func NewStatic(vocab []string, weights [][]float64) (*Static, error) {
	const (
		FAIL1 = "%w: %d topics over %d terms"
		FAIL2 = "topic %d has %d weights for %d terms"
		FAIL3 = "topic %d has no mass"
	)
	if len(weights) == 0 || len(vocab) == 0 {
		return nil, fmt.Errorf(FAIL1, ErrEmptyModel, len(weights), len(vocab))
	}

	phi := mat.NewDense(len(weights), len(vocab), nil)
	for t, row := range weights {
		if len(row) != len(vocab) {
			return nil, fmt.Errorf(FAIL2, t, len(row), len(vocab))
		}
		s := floats.Sum(row)
		if s <= 0 {
			return nil, fmt.Errorf(FAIL3, t)
		}
		r := slices.Clone(row)
		floats.Scale(1/s, r)
		phi.SetRow(t, r)
	}
	return &Static{vocab: slices.Clone(vocab), phi: phi}, nil
}

func (s *Static) NumTopics() int {
	r, _ := s.phi.Dims()
	return r
}

func (s *Static) Vocabulary() []string { return slices.Clone(s.vocab) }

func (s *Static) TopicTermMatrix() mat.Matrix { return s.phi }

// DocumentTopics - p(t|d) proportional to sum over the bag of n(w) p(t|w)
func (s *Static) DocumentTopics(b str.Bag) ([]str.TopicWeight, error) {
	k := s.NumTopics()
	theta := make([]float64, k)
	for _, tc := range b {
		if tc.ID < 0 || tc.ID >= len(s.vocab) {
			return nil, fmt.Errorf("term id %d outside of a vocabulary of %d", tc.ID, len(s.vocab))
		}
		col := mat.Col(nil, tc.ID, s.phi)
		z := floats.Sum(col)
		if z == 0 {
			continue
		}
		floats.AddScaled(theta, tc.Count/z, col)
	}
	return normalizeandcut(theta, s.MinProb), nil
}

func (s *Static) ShowTopic(topic, topn int) ([]str.TermWeight, error) {
	return showtopic(s.phi, s.vocab, topic, topn)
}

// normalizeandcut - scale to a distribution and drop everything below floor
func normalizeandcut(theta []float64, floor float64) []str.TopicWeight {
	z := floats.Sum(theta)
	var tw []str.TopicWeight
	if z == 0 {
		return tw
	}
	for t := range theta {
		w := theta[t] / z
		if w >= floor && w > 0 {
			tw = append(tw, str.TopicWeight{Topic: t, Weight: w})
		}
	}
	return tw
}

// showtopic - the topn heaviest terms of one topic, heaviest first
func showtopic(phi mat.Matrix, vocab []string, topic, topn int) ([]str.TermWeight, error) {
	const (
		FAIL1 = "%w: %d (model has %d topics)"
	)
	tr, tc := phi.Dims()
	if topic < 0 || topic >= tr {
		return nil, fmt.Errorf(FAIL1, ErrNoSuchTopic, topic, tr)
	}

	tss := make([]str.TermWeight, tc)
	for word := 0; word < tc; word++ {
		tss[word] = str.TermWeight{
			Term:   vocab[word],
			Weight: phi.At(topic, word),
		}
	}
	slices.SortStableFunc(tss, func(a, b str.TermWeight) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})

	if topn > len(tss) || topn < 0 {
		topn = len(tss)
	}
	return tss[0:topn], nil
}
