//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"strings"
)

// TopicLabels - label every topic with its n heaviest terms: "bellum gero miles"
func TopicLabels(tm str.TopicModel, n int) ([]string, error) {
	labels := make([]string, tm.NumTopics())
	for t := range labels {
		tw, err := tm.ShowTopic(t, n)
		if err != nil {
			return nil, fmt.Errorf("topic %d: %w", t, err)
		}
		terms := make([]string, len(tw))
		for i := range tw {
			terms[i] = tw[i].Term
		}
		labels[t] = strings.Join(terms, " ")
	}
	return labels, nil
}

// FromModel - query the model with every bag and build the documents x topics matrix
func FromModel(tm str.TopicModel, bags []str.Bag, docLabels []string) (*DocTopicMatrix, error) {
	const (
		FAIL1 = "%w: %d documents but %d document labels"
		FAIL2 = "document %d ('%s'): %w"
	)

	if len(bags) != len(docLabels) {
		return nil, fmt.Errorf(FAIL1, ErrShape, len(bags), len(docLabels))
	}

	assignments := make([][]str.TopicWeight, len(bags))
	for i := range bags {
		tw, err := tm.DocumentTopics(bags[i])
		if err != nil {
			return nil, fmt.Errorf(FAIL2, i, docLabels[i], err)
		}
		assignments[i] = tw
	}

	labels, err := TopicLabels(tm, vv.LABELTERMS)
	if err != nil {
		return nil, err
	}

	return Build(assignments, docLabels, labels)
}
