//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"
	LDATOPICS         = 8
	LDAMAXTOPICS      = 30
	LDAITER           = 200
	LDAXFORMPASSES    = 100
	LDABURNINPASSES   = 2
	LDACHGEVALFRQ     = 10
	LDAPERPEVALFRQ    = 10
	LDAPERPTOL        = 1e-2
	LDAMINPROB        = 0.01 // assignments below this are dropped when a document is queried
	LDASEED           = 1
)

const (
	HEATMAPFILE     = "heatmap"
	HEATMAPEXT      = "png"
	HEATMAPDPI      = 200
	HEATMAPENLARGE  = 20 // rows or columns beyond this get the large figure
	INTERACTIVEFILE = "corpus_interactive"
	INTERACTIVEW    = "1024px"
	INTERACTIVEH    = "768px"
	LABELTERMS      = 3
	RELEVANCELAMBDA = 0.6
	RELEVANCETERMS  = 30
	TOPICWORDSCOLS  = 10
	WORDLECOLOR     = "hsl(245, 58%, 25%)"
	WORDLECOLORMODE = "fixed"
	WORDLEFILE      = "wordle_tp%03d.png"
	WORDLEHEIGHT    = 400
	WORDLEMARGIN    = 4
	WORDLEWIDTH     = 600
	WORDLEWORDS     = 40
)
