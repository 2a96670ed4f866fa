//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"cmp"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"gonum.org/v1/gonum/mat"
	"slices"
)

var ErrShape = errors.New("shape mismatch")

// Orientation - which axis the rows of a DocTopicMatrix run along
type Orientation int

const (
	DocsByTopics Orientation = iota
	TopicsByDocs
)

func (o Orientation) String() string {
	if o == TopicsByDocs {
		return "topics x documents"
	}
	return "documents x topics"
}

// LabeledWeight - one cell of a matrix together with the label of the axis it was read along
type LabeledWeight struct {
	Label  string
	Weight float64
}

// DocTopicMatrix - dense document/topic weights with labels on both axes
type DocTopicMatrix struct {
	m      *mat.Dense
	rows   []string
	cols   []string
	orient Orientation
}

// Build - densify per-document topic assignments into a documents x topics matrix
func Build(assignments [][]str.TopicWeight, docLabels []string, topicLabels []string) (*DocTopicMatrix, error) {
	const (
		FAIL1 = "%w: %d topic assignments but %d document labels"
		FAIL2 = "%w: document %d ('%s') names topic %d but there are %d topic labels"
		FAIL3 = "%w: cannot build a matrix of %d documents and %d topics"
	)

	if len(assignments) != len(docLabels) {
		return nil, fmt.Errorf(FAIL1, ErrShape, len(assignments), len(docLabels))
	}

	nd, nt := len(docLabels), len(topicLabels)
	if nd == 0 || nt == 0 {
		return nil, fmt.Errorf(FAIL3, ErrShape, nd, nt)
	}

	m := mat.NewDense(nd, nt, nil)
	for i, doc := range assignments {
		for _, tw := range doc {
			if tw.Topic < 0 || tw.Topic >= nt {
				return nil, fmt.Errorf(FAIL2, ErrShape, i, docLabels[i], tw.Topic, nt)
			}
			// repeats: last write wins
			m.Set(i, tw.Topic, tw.Weight)
		}
	}

	return &DocTopicMatrix{
		m:      m,
		rows:   slices.Clone(docLabels),
		cols:   slices.Clone(topicLabels),
		orient: DocsByTopics,
	}, nil
}

// Transposed - the same weights with rows and columns swapped
func (d *DocTopicMatrix) Transposed() *DocTopicMatrix {
	return &DocTopicMatrix{
		m:      mat.DenseCopyOf(d.m.T()),
		rows:   slices.Clone(d.cols),
		cols:   slices.Clone(d.rows),
		orient: 1 - d.orient,
	}
}

func (d *DocTopicMatrix) Orientation() Orientation { return d.orient }
func (d *DocTopicMatrix) Dims() (int, int)         { return d.m.Dims() }
func (d *DocTopicMatrix) At(r, c int) float64      { return d.m.At(r, c) }
func (d *DocTopicMatrix) RowLabels() []string      { return slices.Clone(d.rows) }
func (d *DocTopicMatrix) ColLabels() []string      { return slices.Clone(d.cols) }

// NumDocs - document count regardless of orientation
func (d *DocTopicMatrix) NumDocs() int {
	if d.orient == DocsByTopics {
		return len(d.rows)
	}
	return len(d.cols)
}

// DocLabels - document labels regardless of orientation
func (d *DocTopicMatrix) DocLabels() []string {
	if d.orient == DocsByTopics {
		return d.RowLabels()
	}
	return d.ColLabels()
}

// TopicLabels - topic labels regardless of orientation
func (d *DocTopicMatrix) TopicLabels() []string {
	if d.orient == DocsByTopics {
		return d.ColLabels()
	}
	return d.RowLabels()
}

// Row - row i labeled by the column labels
func (d *DocTopicMatrix) Row(i int) []LabeledWeight {
	lw := make([]LabeledWeight, len(d.cols))
	for j := range d.cols {
		lw[j] = LabeledWeight{Label: d.cols[j], Weight: d.m.At(i, j)}
	}
	return lw
}

// Column - column j labeled by the row labels
func (d *DocTopicMatrix) Column(j int) []LabeledWeight {
	lw := make([]LabeledWeight, len(d.rows))
	for i := range d.rows {
		lw[i] = LabeledWeight{Label: d.rows[i], Weight: d.m.At(i, j)}
	}
	return lw
}

// DocumentTopics - the nonzero topics of one document in ascending order of weight; equal weights go by label
func (d *DocTopicMatrix) DocumentTopics(doc int) ([]LabeledWeight, error) {
	const (
		FAIL1 = "%w: document index %d outside of [0, %d)"
	)

	if doc < 0 || doc >= d.NumDocs() {
		return nil, fmt.Errorf(FAIL1, ErrShape, doc, d.NumDocs())
	}

	var all []LabeledWeight
	if d.orient == DocsByTopics {
		all = d.Row(doc)
	} else {
		all = d.Column(doc)
	}

	nz := slices.DeleteFunc(all, func(lw LabeledWeight) bool {
		return lw.Weight == 0
	})

	slices.SortStableFunc(nz, func(a, b LabeledWeight) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return nz, nil
}

// SortedByRowLabel - a copy with the rows in label order
func (d *DocTopicMatrix) SortedByRowLabel() *DocTopicMatrix {
	r, c := d.m.Dims()
	perm := make([]int, r)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return cmp.Compare(d.rows[a], d.rows[b])
	})

	m := mat.NewDense(r, c, nil)
	rows := make([]string, r)
	for i, p := range perm {
		m.SetRow(i, mat.Row(nil, p, d.m))
		rows[i] = d.rows[p]
	}
	return &DocTopicMatrix{m: m, rows: rows, cols: slices.Clone(d.cols), orient: d.orient}
}

// Equal - same labels, same orientation, bit-identical weights
func (d *DocTopicMatrix) Equal(o *DocTopicMatrix) bool {
	return d.orient == o.orient && slices.Equal(d.rows, o.rows) && slices.Equal(d.cols, o.cols) && mat.Equal(d.m, o.m)
}
