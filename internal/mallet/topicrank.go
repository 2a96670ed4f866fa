//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mallet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TopicRank - one row of a topic rank table: whatever the index column holds, and the Rank value
type TopicRank struct {
	Index string
	Rank  float64
}

// ReadTopicRank - a comma separated table whose first column is an index and which has a "Rank" column; rows stay in file order
func ReadTopicRank(r io.Reader) ([]TopicRank, error) {
	const (
		FAIL1 = "%w: cannot read the rank header: %v"
		FAIL2 = "%w: no 'Rank' column in %v"
		FAIL3 = "%w: rank line %d: %v"
		FAIL4 = "%w: rank line %d: '%s' is not a number"
	)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf(FAIL1, ErrMalformed, err)
	}

	rc := -1
	for i, h := range hdr {
		if strings.TrimSpace(h) == "Rank" {
			rc = i
		}
	}
	if rc < 1 {
		return nil, fmt.Errorf(FAIL2, ErrMalformed, hdr)
	}

	var ranks []TopicRank
	line := 1
	for {
		rec, e := cr.Read()
		if e == io.EOF {
			break
		}
		line++
		if e != nil {
			return nil, fmt.Errorf(FAIL3, ErrMalformed, line, e)
		}
		if len(rec) <= rc {
			return nil, fmt.Errorf(FAIL3, ErrMalformed, line, "short row")
		}
		v, e := strconv.ParseFloat(strings.TrimSpace(rec[rc]), 64)
		if e != nil {
			return nil, fmt.Errorf(FAIL4, ErrMalformed, line, rec[rc])
		}
		ranks = append(ranks, TopicRank{Index: strings.TrimSpace(rec[0]), Rank: v})
	}
	return ranks, nil
}

// GetTopicRank - the rank on the topic-th data row of the table in fn, truncated to an int; rows are counted by position, not by index value
func GetTopicRank(topic int, fn string) (int, error) {
	const (
		FAIL1 = "%w: row %d requested but %s has %d rows"
	)

	f, err := os.Open(fn)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	ranks, err := ReadTopicRank(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fn, err)
	}
	if topic < 0 || topic >= len(ranks) {
		return 0, fmt.Errorf(FAIL1, ErrNoSuchTopic, topic, fn, len(ranks))
	}
	return int(ranks[topic].Rank), nil
}
