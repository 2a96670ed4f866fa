//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"errors"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
	"testing"
)

var pastoral = []string{
	"sheep goat shepherd pasture sheep flute",
	"goat pasture meadow shepherd sheep",
	"shepherd flute song meadow goat",
	"sword shield battle spear war",
	"battle war sword trojan shield spear",
	"spear shield trojan war battle sword",
}

func smallfit(t *testing.T) (*Model, []str.Bag) {
	t.Helper()
	cfg := str.LDAConfig{Topics: 2, Iterations: 50, MinProbability: 0.01, Seed: 7, Goroutines: 1}
	md, bags, err := Fit(pastoral, []string{"the"}, cfg, mm.NewSilentMessageMaker())
	if err != nil {
		t.Fatal(err)
	}
	return md, bags
}

func TestFit(t *testing.T) {
	md, bags := smallfit(t)

	if md.NumTopics() != 2 {
		t.Errorf("expected 2 topics, got %d", md.NumTopics())
	}
	if len(bags) != len(pastoral) {
		t.Fatalf("expected %d bags, got %d", len(pastoral), len(bags))
	}
	if bags[0].Len() != 6 {
		t.Errorf("expected 6 tokens in the first document, got %f", bags[0].Len())
	}

	phi := md.TopicTermMatrix()
	k, v := phi.Dims()
	if k != 2 || v != len(md.Vocabulary()) {
		t.Errorf("topic-term matrix is %dx%d for a vocabulary of %d", k, v, len(md.Vocabulary()))
	}
	for i := 0; i < k; i++ {
		if s := floats.Sum(mat.Row(nil, i, phi)); math.Abs(s-1) > 1e-9 {
			t.Errorf("topic %d sums to %f", i, s)
		}
	}

	for d, b := range bags {
		tw, err := md.DocumentTopics(b)
		if err != nil {
			t.Fatal(err)
		}
		total := 0.0
		for _, w := range tw {
			total += w.Weight
		}
		// weights below MinProbability are cut, so the sum may fall a little short of 1
		if total > 1+1e-9 || total < 0.98 {
			t.Errorf("document %d: weights sum to %f", d, total)
		}
	}
}

func TestDocumentTopicsForText(t *testing.T) {
	md, _ := smallfit(t)
	tw, err := md.DocumentTopicsForText("shepherd goat meadow")
	if err != nil {
		t.Fatal(err)
	}
	if len(tw) == 0 {
		t.Error("expected at least one topic")
	}

	if _, err = md.DocumentTopics(str.Bag{{ID: 10_000, Count: 1}}); err == nil {
		t.Error("expected an id outside the vocabulary to fail")
	}
}

func TestFitRejects(t *testing.T) {
	cfg := str.LDAConfig{Topics: 0}
	if _, _, err := Fit(pastoral, nil, cfg, mm.NewSilentMessageMaker()); !errors.Is(err, ErrEmptyModel) {
		t.Errorf("expected ErrEmptyModel, got %v", err)
	}
	cfg.Topics = 2
	if _, _, err := Fit(nil, nil, cfg, mm.NewSilentMessageMaker()); !errors.Is(err, ErrEmptyModel) {
		t.Errorf("expected ErrEmptyModel, got %v", err)
	}
}
