//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/corpus"
	"github.com/e-gun/HipparchiaLDAVis/internal/lda"
	"github.com/e-gun/HipparchiaLDAVis/internal/lnch"
	"github.com/e-gun/HipparchiaLDAVis/internal/mallet"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vis"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"github.com/e-gun/HipparchiaLDAVis/web"
	"github.com/pkg/profile"
	"os"
	"path/filepath"
	"time"
)

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string

func main() {
	lnch.GitCommit = GitCommit
	lnch.VersSuppl = VersSuppl
	lnch.BuildDate = BuildDate

	m := lnch.NewMessageMakerWithDefaults()
	cfg := lnch.ConfigAtLaunch(os.Args[1:], m)

	// go tool pprof --pdf ./HipparchiaLDAVis /var/folders/.../cpu.pprof > profile.pdf
	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	lnch.PrintVersion(*cfg, m)

	if err := run(cfg, m); err != nil {
		m.CRIT(err.Error())
		// ExitOrHang() would skip the deferred profile.Stop()
		if !cfg.ProfileCPU && !cfg.ProfileMEM {
			m.ExitOrHang(1)
		}
	}
}

// run - whichever of the mallet path, the modeling path and the browser the configuration asks for
func run(cfg *str.CurrentConfiguration, m *mm.MessageMaker) error {
	const (
		FAIL1 = "nothing to do: give a corpus with -cd or -db, a mallet word-weights file with -mw, or -sv"
	)

	switch {
	case cfg.MalletWeights != "":
		if err := runmallet(cfg, m); err != nil {
			return err
		}
	case cfg.CorpusDir != "" || cfg.DBDriver != "":
		if err := runmodel(cfg, m); err != nil {
			return err
		}
	case !cfg.Serve:
		return errors.New(FAIL1)
	}

	if cfg.Serve {
		return web.StartEchoServer(cfg, m)
	}
	return nil
}

// runmallet - word list and word cloud for one topic of an existing mallet run
func runmallet(cfg *str.CurrentConfiguration, m *mm.MessageMaker) error {
	const (
		MSG1 = "topic %d: %s"
		MSG2 = "word cloud written to %s"
		MSG3 = "topic %d has rank %d"
	)

	rows, err := mallet.ReadWordWeightsFile(cfg.MalletWeights)
	if err != nil {
		return err
	}
	g := mallet.Group(rows)

	words, err := mallet.GetWordleWords(g, cfg.WordleWords, cfg.MalletTopic)
	if err != nil {
		return err
	}
	m.FYI(fmt.Sprintf(MSG1, cfg.MalletTopic, words))

	wo, err := wordleopts(cfg)
	if err != nil {
		return err
	}
	fn, err := vis.PlotWordleFromGrouped(g, cfg.MalletTopic, cfg.WordleWords, cfg.OutputDir, cfg.DPI, wo)
	switch {
	case errors.Is(err, vis.ErrSaveSkipped):
		m.WARN(err.Error())
	case err != nil:
		return err
	default:
		m.PEEK(fmt.Sprintf(MSG2, fn))
	}

	if cfg.RankFile != "" {
		rk, e := mallet.GetTopicRank(cfg.MalletTopic, cfg.RankFile)
		if e != nil {
			return e
		}
		m.NOTE(fmt.Sprintf(MSG3, cfg.MalletTopic, rk))
	}
	return nil
}

// runmodel - read the corpus, fit the model, render everything asked for
func runmodel(cfg *str.CurrentConfiguration, m *mm.MessageMaker) error {
	start := time.Now()
	previous := time.Now()

	docs, err := loadcorpus(cfg, m)
	if err != nil {
		return err
	}
	m.Timer("A1", fmt.Sprintf("%d documents loaded", len(docs)), start, previous)

	uh, _ := os.UserHomeDir()
	stops, err := corpus.Stops(cfg.StopLang, fmt.Sprintf(vv.CONFIGALTAPTH, uh), m)
	if err != nil {
		return err
	}

	labels, texts := corpus.Split(docs)

	previous = time.Now()
	model, bags, err := lda.Fit(texts, stops, cfg.LDA, m)
	if err != nil {
		return err
	}
	m.Timer("A2", fmt.Sprintf("%d topics fitted", model.NumTopics()), start, previous)

	v, err := vis.NewVisualization(model, bags, labels, m,
		vis.WithRelevance(cfg.Lambda, cfg.RelevanceTerms),
		vis.WithTitle(corpustitle(cfg)))
	if err != nil {
		return err
	}

	previous = time.Now()
	if err = v.MakeHeatmap(); err != nil {
		return err
	}
	so := vis.SaveOpts{Filename: cfg.HeatmapName, Ext: cfg.HeatmapExt, DPI: cfg.DPI}
	if err = skippable(v.SaveHeatmap(cfg.OutputDir, so), m); err != nil {
		return err
	}
	m.Timer("A3", "heatmap rendered", start, previous)

	if cfg.DocBarChart >= 0 {
		bo := vis.SaveOpts{Filename: fmt.Sprintf("doctopics_%03d", cfg.DocBarChart), Ext: cfg.HeatmapExt, DPI: cfg.DPI}
		if err = skippable(v.SaveDocTopics(cfg.OutputDir, cfg.DocBarChart, bo), m); err != nil {
			return err
		}
	}

	if cfg.WordleAll {
		previous = time.Now()
		wo, e := wordleopts(cfg)
		if e != nil {
			return e
		}
		saved, e := v.SaveWordles(cfg.OutputDir, cfg.WordleWords, wo, cfg.DPI)
		if e = skippable(e, m); e != nil {
			return e
		}
		m.Timer("A4", fmt.Sprintf("%d word cloud files written", len(saved)), start, previous)
	}

	if cfg.Interactive {
		previous = time.Now()
		if err = v.MakeInteractive(); err != nil {
			return err
		}
		if err = skippable(v.SaveInteractive(cfg.OutputDir), m); err != nil {
			return err
		}
		m.Timer("A5", "interactive visualization rendered", start, previous)
	}

	if cfg.TopicWords {
		tt, e := vis.TopicWordsTable(model, vv.TOPICWORDSCOLS)
		if e != nil {
			return e
		}
		fmt.Print(tt.String())
	}

	return nil
}

// loadcorpus - a folder of files or the rows of a database query
func loadcorpus(cfg *str.CurrentConfiguration, m *mm.MessageMaker) ([]str.Document, error) {
	if cfg.CorpusDir != "" {
		return corpus.FromDir(cfg.CorpusDir, cfg.CorpusExt, m)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.DBDriver == "pgx" {
		pool, err := corpus.OpenPool(ctx, cfg.DBDSN, cfg.WorkerCount)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return corpus.FromPostgres(ctx, pool, cfg.DBQuery, m)
	}

	db, err := corpus.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return corpus.FromSQL(ctx, db, cfg.DBQuery, m)
}

// corpustitle - the corpus folder or the database driver; names the interactive page
func corpustitle(cfg *str.CurrentConfiguration) string {
	if cfg.CorpusDir != "" {
		return filepath.Base(filepath.Clean(cfg.CorpusDir))
	}
	return cfg.DBDriver + " corpus"
}

// wordleopts - the word cloud settings in the configuration
func wordleopts(cfg *str.CurrentConfiguration) (vis.WordleOpts, error) {
	wo := vis.DefaultWordleOpts()
	cm, err := vis.ParseColorMode(cfg.WordleColor)
	if err != nil {
		return wo, err
	}
	wo.Mode = cm
	if cfg.WordleColorVal != "" {
		if _, err = vis.ParseCSSColor(cfg.WordleColorVal); err != nil {
			return wo, err
		}
		wo.Color = cfg.WordleColorVal
	}
	wo.Seed = cfg.LDA.Seed
	return wo, nil
}

// skippable - a file that vanished between folder creation and write is not fatal; anything else is
func skippable(err error, m *mm.MessageMaker) error {
	if errors.Is(err, vis.ErrSaveSkipped) {
		m.WARN("continuing without the skipped file")
		return nil
	}
	return err
}
