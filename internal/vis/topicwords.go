//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"regexp"
	"strings"
)

// two or more letters, optionally split by one punctuation mark: "don't", "Aeneas", not "x" or "42"
var topicwordre = regexp.MustCompile(`\p{L}+\p{P}?\p{L}+`)

// TopicWords - a table of the leading words of every topic
type TopicWords struct {
	Rows    []string
	Columns []string
	Cells   [][]string
}

// TopicWordsTable - rows "Topic n", columns "Key n"; terms without two letters in a row are left out
func TopicWordsTable(tm str.TopicModel, words int) (*TopicWords, error) {
	tt := &TopicWords{}
	width := 0
	for t := 0; t < tm.NumTopics(); t++ {
		tw, err := tm.ShowTopic(t, words)
		if err != nil {
			return nil, err
		}
		var kept []string
		for _, w := range tw {
			kept = append(kept, topicwordre.FindAllString(w.Term, -1)...)
		}
		width = max(width, len(kept))
		tt.Rows = append(tt.Rows, fmt.Sprintf("Topic %d", t+1))
		tt.Cells = append(tt.Cells, kept)
	}

	for i := 0; i < width; i++ {
		tt.Columns = append(tt.Columns, fmt.Sprintf("Key %d", i+1))
	}
	// pad so that every row is as wide as the header
	for i := range tt.Cells {
		for len(tt.Cells[i]) < width {
			tt.Cells[i] = append(tt.Cells[i], "")
		}
	}
	return tt, nil
}

// String - tab separated, header first
func (tt *TopicWords) String() string {
	var sb strings.Builder
	sb.WriteString("\t" + strings.Join(tt.Columns, "\t") + "\n")
	for i, r := range tt.Rows {
		sb.WriteString(r + "\t" + strings.Join(tt.Cells[i], "\t") + "\n")
	}
	return sb.String()
}
