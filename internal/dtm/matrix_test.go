//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"errors"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"slices"
	"testing"
)

func twoDocs(t *testing.T) *DocTopicMatrix {
	t.Helper()
	a := [][]str.TopicWeight{
		{{Topic: 0, Weight: 0.7}, {Topic: 1, Weight: 0.3}},
		{{Topic: 1, Weight: 1.0}},
	}
	m, err := Build(a, []string{"d1", "d2"}, []string{"t1", "t2"})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return m
}

func TestBuildDensifies(t *testing.T) {
	m := twoDocs(t)

	want := [][]float64{{0.7, 0.3}, {0, 1}}
	r, c := m.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("expected 2x2, got %dx%d", r, c)
	}
	for i := range want {
		for j := range want[i] {
			if m.At(i, j) != want[i][j] {
				t.Errorf("At(%d, %d) = %f; expected %f", i, j, m.At(i, j), want[i][j])
			}
		}
	}
	if m.Orientation() != DocsByTopics {
		t.Errorf("expected %s, got %s", DocsByTopics, m.Orientation())
	}
}

func TestBuildShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		a      [][]str.TopicWeight
		docs   []string
		topics []string
	}{
		{"more labels than documents", [][]str.TopicWeight{{}}, []string{"a", "b"}, []string{"t"}},
		{"no topics", [][]str.TopicWeight{{}}, []string{"a"}, nil},
		{"no documents", nil, nil, []string{"t"}},
		{"topic out of range", [][]str.TopicWeight{{{Topic: 3, Weight: 1}}}, []string{"a"}, []string{"t1", "t2"}},
		{"negative topic", [][]str.TopicWeight{{{Topic: -1, Weight: 1}}}, []string{"a"}, []string{"t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.a, tt.docs, tt.topics)
			if !errors.Is(err, ErrShape) {
				t.Errorf("expected ErrShape, got %v", err)
			}
		})
	}
}

func TestBuildRepeatedTopicLastWins(t *testing.T) {
	a := [][]str.TopicWeight{{{Topic: 0, Weight: 0.2}, {Topic: 0, Weight: 0.9}}}
	m, err := Build(a, []string{"d"}, []string{"t"})
	if err != nil {
		t.Fatal(err)
	}
	if m.At(0, 0) != 0.9 {
		t.Errorf("expected 0.9, got %f", m.At(0, 0))
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	if !twoDocs(t).Equal(twoDocs(t)) {
		t.Error("two builds from the same input differ")
	}
}

func TestTransposed(t *testing.T) {
	m := twoDocs(t)
	tr := m.Transposed()

	if tr.Orientation() != TopicsByDocs {
		t.Errorf("expected %s, got %s", TopicsByDocs, tr.Orientation())
	}
	if !slices.Equal(tr.RowLabels(), []string{"t1", "t2"}) || !slices.Equal(tr.ColLabels(), []string{"d1", "d2"}) {
		t.Errorf("labels not swapped: rows %v cols %v", tr.RowLabels(), tr.ColLabels())
	}
	if tr.At(1, 0) != 0.3 || tr.At(0, 1) != 0 {
		t.Errorf("weights not transposed: %f %f", tr.At(1, 0), tr.At(0, 1))
	}
	if !slices.Equal(tr.DocLabels(), m.DocLabels()) || tr.NumDocs() != 2 {
		t.Errorf("document view should not depend on orientation")
	}
	if !tr.Transposed().Equal(m) {
		t.Error("transposing twice should give the original back")
	}
	// the view is a copy
	if m.At(0, 0) != 0.7 {
		t.Error("Transposed() changed the original")
	}
}

func TestDocumentTopics(t *testing.T) {
	a := [][]str.TopicWeight{{{Topic: 0, Weight: 0.5}, {Topic: 2, Weight: 0.1}, {Topic: 3, Weight: 0.4}}}
	m, err := Build(a, []string{"d"}, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []*DocTopicMatrix{m, m.Transposed()} {
		lw, err := v.DocumentTopics(0)
		if err != nil {
			t.Fatal(err)
		}
		want := []LabeledWeight{{"c", 0.1}, {"d", 0.4}, {"a", 0.5}}
		if !slices.Equal(lw, want) {
			t.Errorf("%s: expected %v, got %v", v.Orientation(), want, lw)
		}
	}

	if _, err = m.DocumentTopics(1); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape for a missing document, got %v", err)
	}
}

func TestDocumentTopicsTies(t *testing.T) {
	a := [][]str.TopicWeight{{{Topic: 0, Weight: 0.3}, {Topic: 1, Weight: 0.3}, {Topic: 2, Weight: 0.3}, {Topic: 3, Weight: 0.1}}}
	m, err := Build(a, []string{"d"}, []string{"zeta", "alpha", "mu", "omega"})
	if err != nil {
		t.Fatal(err)
	}

	lw, err := m.DocumentTopics(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []LabeledWeight{{"omega", 0.1}, {"alpha", 0.3}, {"mu", 0.3}, {"zeta", 0.3}}
	if !slices.Equal(lw, want) {
		t.Errorf("expected %v, got %v", want, lw)
	}
}

func TestSortedByRowLabel(t *testing.T) {
	a := [][]str.TopicWeight{{{Topic: 0, Weight: 1}}, {{Topic: 0, Weight: 2}}, {{Topic: 0, Weight: 3}}}
	m, err := Build(a, []string{"c", "a", "b"}, []string{"t"})
	if err != nil {
		t.Fatal(err)
	}
	s := m.SortedByRowLabel()
	if !slices.Equal(s.RowLabels(), []string{"a", "b", "c"}) {
		t.Errorf("rows not sorted: %v", s.RowLabels())
	}
	if s.At(0, 0) != 2 || s.At(1, 0) != 3 || s.At(2, 0) != 1 {
		t.Error("weights did not follow their labels")
	}
}
