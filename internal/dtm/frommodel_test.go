//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"testing"
)

// fixedmodel - every bag gets the same canned answer
type fixedmodel struct {
	answers [][]str.TopicWeight
	terms   [][]str.TermWeight
	calls   int
}

func (f *fixedmodel) NumTopics() int { return len(f.terms) }

func (f *fixedmodel) DocumentTopics(b str.Bag) ([]str.TopicWeight, error) {
	if f.calls >= len(f.answers) {
		return nil, errors.New("asked too often")
	}
	f.calls++
	return f.answers[f.calls-1], nil
}

func (f *fixedmodel) ShowTopic(topic, topn int) ([]str.TermWeight, error) {
	if topic >= len(f.terms) {
		return nil, fmt.Errorf("no topic %d", topic)
	}
	tw := f.terms[topic]
	return tw[:min(topn, len(tw))], nil
}

func TestFromModel(t *testing.T) {
	fm := &fixedmodel{
		answers: [][]str.TopicWeight{{{Topic: 1, Weight: 1}}, {{Topic: 0, Weight: 0.6}, {Topic: 1, Weight: 0.4}}},
		terms: [][]str.TermWeight{
			{{Term: "arma", Weight: 0.5}, {Term: "virum", Weight: 0.3}, {Term: "cano", Weight: 0.1}, {Term: "troiae", Weight: 0.1}},
			{{Term: "bellum", Weight: 0.9}, {Term: "pax", Weight: 0.1}},
		},
	}

	m, err := FromModel(fm, make([]str.Bag, 2), []string{"aen1", "aen2"})
	if err != nil {
		t.Fatal(err)
	}

	tl := m.TopicLabels()
	if tl[0] != "arma virum cano" || tl[1] != "bellum pax" {
		t.Errorf("unexpected topic labels %q", tl)
	}
	if m.At(0, 1) != 1 || m.At(1, 0) != 0.6 {
		t.Errorf("weights not carried over")
	}
}

func TestFromModelLabelMismatch(t *testing.T) {
	fm := &fixedmodel{terms: [][]str.TermWeight{{{Term: "a", Weight: 1}}}}
	if _, err := FromModel(fm, make([]str.Bag, 3), []string{"x"}); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}
