//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "gonum.org/v1/gonum/mat"

// TopicWeight - one (topic, weight) pair of a document's assignment
type TopicWeight struct {
	Topic  int
	Weight float64
}

// TermWeight - one term of a topic
type TermWeight struct {
	Term   string
	Weight float64
}

// TermCount - one entry of a sparse bag of words
type TermCount struct {
	ID    int
	Count float64
}

// Bag - a document as sparse term counts keyed into a vocabulary
type Bag []TermCount

// Len - total number of tokens in the bag
func (b Bag) Len() float64 {
	t := 0.0
	for _, tc := range b {
		t += tc.Count
	}
	return t
}

// Document - a labeled text
type Document struct {
	Label string
	Text  string
}

// TopicModel - what the visualizations need from a fitted model
type TopicModel interface {
	NumTopics() int
	DocumentTopics(b Bag) ([]TopicWeight, error)
	ShowTopic(topic, topn int) ([]TermWeight, error)
}

// TermSpace - the full topic-term distribution; the interactive view needs it
type TermSpace interface {
	TopicModel
	Vocabulary() []string
	TopicTermMatrix() mat.Matrix // topics x terms; rows sum to 1
}
