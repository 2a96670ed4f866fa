//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"errors"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"gonum.org/v1/gonum/mat"
	"math"
	"testing"
)

func twotopics(t *testing.T) *Static {
	t.Helper()
	s, err := NewStatic([]string{"arma", "virum", "bellum", "pax"}, [][]float64{
		{4, 4, 1, 1},
		{0, 1, 3, 6},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewStaticNormalizes(t *testing.T) {
	s := twotopics(t)
	phi := s.TopicTermMatrix()
	for r := 0; r < s.NumTopics(); r++ {
		if sum := mat.Sum(phi.(*mat.Dense).RowView(r)); math.Abs(sum-1) > 1e-12 {
			t.Errorf("topic %d sums to %f", r, sum)
		}
	}
}

func TestNewStaticRejects(t *testing.T) {
	if _, err := NewStatic(nil, [][]float64{{1}}); !errors.Is(err, ErrEmptyModel) {
		t.Errorf("expected ErrEmptyModel, got %v", err)
	}
	if _, err := NewStatic([]string{"a", "b"}, [][]float64{{1}}); err == nil {
		t.Error("expected an error for a short row")
	}
	if _, err := NewStatic([]string{"a"}, [][]float64{{0}}); err == nil {
		t.Error("expected an error for a topic with no mass")
	}
}

func TestShowTopic(t *testing.T) {
	s := twotopics(t)

	tw, err := s.ShowTopic(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tw) != 2 || tw[0].Term != "pax" || tw[1].Term != "bellum" {
		t.Errorf("unexpected terms %v", tw)
	}

	tw, _ = s.ShowTopic(0, 99)
	if len(tw) != 4 {
		t.Errorf("expected the whole vocabulary, got %d terms", len(tw))
	}

	if _, err = s.ShowTopic(2, 1); !errors.Is(err, ErrNoSuchTopic) {
		t.Errorf("expected ErrNoSuchTopic, got %v", err)
	}
}

func TestDocumentTopics(t *testing.T) {
	s := twotopics(t)

	// only "pax": mostly the second topic
	tw, err := s.DocumentTopics(str.Bag{{ID: 3, Count: 5}})
	if err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	var second float64
	for _, w := range tw {
		sum += w.Weight
		if w.Topic == 1 {
			second = w.Weight
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum to %f", sum)
	}
	if second < 0.8 {
		t.Errorf("expected topic 1 to dominate, got %f", second)
	}

	s.MinProb = 0.5
	tw, _ = s.DocumentTopics(str.Bag{{ID: 3, Count: 5}})
	if len(tw) != 1 || tw[0].Topic != 1 {
		t.Errorf("expected the small topic to be cut, got %v", tw)
	}

	if _, err = s.DocumentTopics(str.Bag{{ID: 10, Count: 1}}); err == nil {
		t.Error("expected an error for a term outside the vocabulary")
	}

	tw, _ = s.DocumentTopics(nil)
	if len(tw) != 0 {
		t.Errorf("an empty bag should have no topics, got %v", tw)
	}
}

func TestBagsFromTermDocMatrix(t *testing.T) {
	tdm := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 2,
		4, 0,
	})
	bags := BagsFromTermDocMatrix(tdm)
	if len(bags) != 2 {
		t.Fatalf("expected 2 bags, got %d", len(bags))
	}
	if bags[0].Len() != 5 || bags[1].Len() != 2 {
		t.Errorf("unexpected bag sizes %f %f", bags[0].Len(), bags[1].Len())
	}
	if bags[0][0].ID != 0 || bags[0][1].ID != 2 {
		t.Errorf("bag 0 not in id order: %v", bags[0])
	}
}
