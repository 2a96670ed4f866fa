//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite  bool
	CorpusDir      string
	CorpusExt      string
	DBDriver       string // "sqlite" or "pgx"
	DBDSN          string
	DBQuery        string
	DocBarChart    int // -1: none
	DPI            int
	EchoLog        int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	HeatmapExt     string
	HeatmapName    string
	HostIP         string
	HostPort       int
	Interactive    bool
	LDA            LDAConfig
	Lambda         float64 // relevance weighting on the interactive page
	LogLevel       int
	MalletTopic    int
	MalletWeights  string
	OutputDir      string
	ProfileCPU     bool
	ProfileMEM     bool
	RankFile       string
	RelevanceTerms int
	Serve          bool
	StopLang       string
	TopicWords     bool
	WordleAll      bool
	WordleColor    string
	WordleColorVal string
	WordleWords    int
	WorkerCount    int
}

// LDAConfig - the knobs handed to the topic model
type LDAConfig struct {
	Topics         int
	Iterations     int
	XformPasses    int
	BurnInPasses   int
	ChangeEvalFrq  int
	PerplexEvalFrq int
	PerplexTol     float64
	MinProbability float64
	Seed           uint64
	Goroutines     int
}
