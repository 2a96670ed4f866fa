//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mallet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/gen"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrNoSuchTopic = errors.New("no such topic")
	ErrMalformed   = errors.New("malformed mallet file")
)

// WordWeight - one row of a mallet "--topic-word-weights-file"
type WordWeight struct {
	Topic  int
	Word   string
	Weight float64
}

// ReadWordWeightsFile - open and parse a word-weights file
func ReadWordWeightsFile(fn string) ([]WordWeight, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ww, err := ReadWordWeights(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return ww, nil
}

// ReadWordWeights - parse "topic<TAB>word<TAB>weight" lines (no header) and sort them by topic, then by falling weight
func ReadWordWeights(r io.Reader) ([]WordWeight, error) {
	const (
		FAIL1 = "%w: line %d: %v"
		FAIL2 = "%w: line %d: topic '%s' is not an integer"
		FAIL3 = "%w: line %d: weight '%s' is not a number"
	)

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 3
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var rows []WordWeight
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf(FAIL1, ErrMalformed, line, err)
		}
		t, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf(FAIL2, ErrMalformed, line, rec[0])
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf(FAIL3, ErrMalformed, line, rec[2])
		}
		rows = append(rows, WordWeight{Topic: t, Word: rec[1], Weight: w})
	}

	SortRows(rows)
	return rows, nil
}

// SortRows - ascending topic, descending weight; stable so equal weights keep file order
func SortRows(rows []WordWeight) {
	slices.SortStableFunc(rows, func(a, b WordWeight) int {
		switch {
		case a.Topic != b.Topic:
			return a.Topic - b.Topic
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
}

// Grouped - word weights keyed by topic; each group is heaviest first
type Grouped struct {
	groups map[int][]WordWeight
}

// Group - sort a copy of the rows and split it by topic
func Group(rows []WordWeight) Grouped {
	sorted := slices.Clone(rows)
	SortRows(sorted)

	g := Grouped{groups: make(map[int][]WordWeight)}
	for _, r := range sorted {
		g.groups[r.Topic] = append(g.groups[r.Topic], r)
	}
	return g
}

// Topics - the topic ids present, ascending
func (g Grouped) Topics() []int {
	return gen.SortedKeys(g.groups)
}

// Len - number of topics
func (g Grouped) Len() int {
	return len(g.groups)
}

// TopWords - the n heaviest words of topic; fewer if the topic is short
func TopWords(g Grouped, n int, topic int) ([]str.TermWeight, error) {
	const (
		FAIL1 = "%w: %d (the file holds %d topics)"
		FAIL2 = "cannot take %d words"
	)

	grp, ok := g.groups[topic]
	if !ok {
		return nil, fmt.Errorf(FAIL1, ErrNoSuchTopic, topic, g.Len())
	}
	if n < 0 {
		return nil, fmt.Errorf(FAIL2, n)
	}
	if n > len(grp) {
		n = len(grp)
	}

	tw := make([]str.TermWeight, n)
	for i := 0; i < n; i++ {
		tw[i] = str.TermWeight{Term: grp[i].Word, Weight: grp[i].Weight}
	}
	return tw, nil
}

// GetWordleWords - the n heaviest words of topic as one string; every word carries a trailing space: "cat dog "
func GetWordleWords(g Grouped, n int, topic int) (string, error) {
	tw, err := TopWords(g, n, topic)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, t := range tw {
		sb.WriteString(t.Term)
		sb.WriteString(" ")
	}
	return sb.String(), nil
}
