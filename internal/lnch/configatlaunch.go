//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"os"
	"runtime"
	"strconv"
	"text/template"
)

// Action - what main() should do once the flags have been read
type Action int

const (
	ActRun Action = iota
	ActHelp
	ActVersion
	ActFullVersion
)

// ConfigAtLaunch - read the configuration values from JSON and/or command line; help and version requests exit here
func ConfigAtLaunch(args []string, m *mm.MessageMaker) *str.CurrentConfiguration {
	const (
		FAIL1 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL3 = "Refusing to model more than %d topics ---> setting topic count to %d"
		MSG1  = "'%s'%s loaded"
	)

	cfg := BuildDefaultConfig()

	cf := ConfigFileFromArgs(args)
	loaded, err := LoadConfigFile(cfg, cf)
	if err != nil {
		m.CRIT(fmt.Sprintf(FAIL1, cf))
	}

	act, err := ApplyFlags(cfg, args)
	m.EC(err)
	UpdateMessageMakerWithConfig(m, cfg)

	switch act {
	case ActHelp:
		PrintVersion(*cfg, m)
		PrintBuildInfo(*cfg, m)
		fmt.Println(HelpText(cfg, m))
		os.Exit(0)
	case ActFullVersion:
		PrintVersion(*cfg, m)
		PrintBuildInfo(*cfg, m)
		os.Exit(1)
	case ActVersion:
		fmt.Println(vv.VERSION + VersSuppl)
		os.Exit(1)
	default:
		// run
	}

	y := ""
	if !loaded {
		y = " *not*"
	}
	m.TMI(fmt.Sprintf(MSG1, cf, y))

	if cfg.WorkerCount > runtime.NumCPU() {
		m.CRIT(fmt.Sprintf(FAIL2, cfg.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		cfg.WorkerCount = runtime.NumCPU()
	}
	cfg.LDA.Goroutines = cfg.WorkerCount

	if cfg.LDA.Topics > vv.LDAMAXTOPICS {
		m.CRIT(fmt.Sprintf(FAIL3, vv.LDAMAXTOPICS, vv.LDAMAXTOPICS))
		cfg.LDA.Topics = vv.LDAMAXTOPICS
	}

	return cfg
}

// ConfigFileFromArgs - "-cf path" if it was given; otherwise the default location in the user's home
func ConfigFileFromArgs(args []string) string {
	for i, a := range args {
		if a == "-cf" && i+1 < len(args) {
			return args[i+1]
		}
	}
	uh, _ := os.UserHomeDir()
	return fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
}

// LoadConfigFile - overlay the JSON in fn onto cfg; a missing file is not an error, an unparseable one is
func LoadConfigFile(cfg *str.CurrentConfiguration, fn string) (bool, error) {
	loadedcfg, e := os.Open(fn)
	if e != nil {
		if errors.Is(e, os.ErrNotExist) {
			return false, nil
		}
		return false, e
	}
	defer loadedcfg.Close()

	// cfg is untouched if the decode fails
	confc := *cfg
	decoderc := json.NewDecoder(loadedcfg)
	if errc := decoderc.Decode(&confc); errc != nil {
		return false, errc
	}
	*cfg = confc
	return true, nil
}

// ApplyFlags - hand-parse the command line into cfg
func ApplyFlags(cfg *str.CurrentConfiguration, args []string) (Action, error) {
	const (
		FAIL1 = "flag %s requires a value"
		FAIL2 = "flag %s: '%s' is not a number"
		FAIL3 = "flag -wc: unknown word cloud color mode '%s'"
		FAIL4 = "flag -la: lambda must lie in [0, 1]; got %g"
	)

	act := ActRun

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(FAIL1, args[i])
		}
		return args[i+1], nil
	}

	num := func(i int) (int, error) {
		v, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf(FAIL2, args[i], v)
		}
		return n, nil
	}

	fnum := func(i int) (float64, error) {
		v, err := next(i)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf(FAIL2, args[i], v)
		}
		return f, nil
	}

	for i, a := range args {
		var err error
		switch a {
		case "-vv":
			act = ActFullVersion
		case "-v":
			act = ActVersion
		case "-h":
			act = ActHelp
		case "-bd":
			cfg.DocBarChart, err = num(i)
		case "-bw":
			cfg.BlackAndWhite = true
		case "-cd":
			cfg.CorpusDir, err = next(i)
		case "-ce":
			cfg.CorpusExt, err = next(i)
		case "-cf":
			// consumed by ConfigFileFromArgs()
		case "-db":
			cfg.DBDriver, err = next(i)
		case "-dp":
			cfg.DPI, err = num(i)
		case "-dq":
			cfg.DBQuery, err = next(i)
		case "-ds":
			cfg.DBDSN, err = next(i)
		case "-el":
			cfg.EchoLog, err = num(i)
		case "-gl":
			cfg.LogLevel, err = num(i)
		case "-hm":
			cfg.HeatmapName, err = next(i)
		case "-hx":
			cfg.HeatmapExt, err = next(i)
		case "-ia":
			cfg.Interactive = true
		case "-it":
			cfg.LDA.Iterations, err = num(i)
		case "-la":
			cfg.Lambda, err = fnum(i)
			if err == nil && !(cfg.Lambda >= 0 && cfg.Lambda <= 1) {
				err = fmt.Errorf(FAIL4, cfg.Lambda)
			}
		case "-mt":
			cfg.MalletTopic, err = num(i)
		case "-mw":
			cfg.MalletWeights, err = next(i)
		case "-od":
			cfg.OutputDir, err = next(i)
		case "-pc":
			cfg.ProfileCPU = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-rk":
			cfg.RankFile, err = next(i)
		case "-rt":
			cfg.RelevanceTerms, err = num(i)
		case "-sa":
			cfg.HostIP, err = next(i)
		case "-sl":
			cfg.StopLang, err = next(i)
		case "-sp":
			cfg.HostPort, err = num(i)
		case "-sv":
			cfg.Serve = true
		case "-tp":
			cfg.LDA.Topics, err = num(i)
		case "-tw":
			cfg.TopicWords = true
		case "-wc":
			cfg.WordleColor, err = next(i)
			if err == nil && cfg.WordleColor != "fixed" && cfg.WordleColor != "random" {
				err = fmt.Errorf(FAIL3, cfg.WordleColor)
			}
		case "-wk":
			cfg.WorkerCount, err = num(i)
		case "-wl":
			cfg.WordleAll = true
		case "-wn":
			cfg.WordleWords, err = num(i)
		default:
			// do nothing
		}
		if err != nil {
			return act, err
		}
	}
	return act, nil
}

// HelpText - the colorized help template
func HelpText(cfg *str.CurrentConfiguration, m *mm.MessageMaker) string {
	const (
		FAIL1 = "HelpText() failed to execute help text template"
	)
	uh, _ := os.UserHomeDir()

	mp := map[string]interface{}{
		"conffile":  vv.CONFIGBASIC,
		"corpdir":   cfg.CorpusDir,
		"corpext":   cfg.CorpusExt,
		"cpus":      runtime.NumCPU(),
		"dbquery":   cfg.DBQuery,
		"dpi":       cfg.DPI,
		"echoll":    cfg.EchoLog,
		"hlvll":     cfg.LogLevel,
		"hmext":     cfg.HeatmapExt,
		"hmname":    cfg.HeatmapName,
		"home":      fmt.Sprintf(vv.CONFIGALTAPTH, uh),
		"host":      cfg.HostIP,
		"interact":  vv.INTERACTIVEFILE,
		"iter":      cfg.LDA.Iterations,
		"lambda":    cfg.Lambda,
		"maxtopics": vv.LDAMAXTOPICS,
		"mtopic":    cfg.MalletTopic,
		"outdir":    cfg.OutputDir,
		"port":      cfg.HostPort,
		"projurl":   vv.PROJURL,
		"relterms":  cfg.RelevanceTerms,
		"stops":     cfg.StopLang,
		"topics":    cfg.LDA.Topics,
		"wcmode":    cfg.WordleColor,
		"wcwords":   cfg.WordleWords,
		"workers":   cfg.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, mp); ee != nil {
		m.CRIT(FAIL1)
	}
	return m.ColStyle(b.String())
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CorpusDir = ""
	c.CorpusExt = vv.DEFAULTCORPUSEXT
	c.DBDriver = ""
	c.DBDSN = ""
	c.DBQuery = "SELECT label, body FROM documents ORDER BY label"
	c.DocBarChart = -1
	c.DPI = vv.HEATMAPDPI
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.HeatmapExt = vv.HEATMAPEXT
	c.HeatmapName = vv.HEATMAPFILE
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.Interactive = false
	c.Lambda = vv.RELEVANCELAMBDA
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.MalletTopic = 0
	c.OutputDir = vv.DEFAULTOUTPUTDIR
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.RelevanceTerms = vv.RELEVANCETERMS
	c.Serve = false
	c.StopLang = vv.DEFAULTSTOPLANG
	c.TopicWords = false
	c.WordleAll = false
	c.WordleColor = vv.WORDLECOLORMODE
	c.WordleColorVal = vv.WORDLECOLOR
	c.WordleWords = vv.WORDLEWORDS
	c.WorkerCount = runtime.NumCPU()
	c.LDA = str.LDAConfig{
		Topics:         vv.LDATOPICS,
		Iterations:     vv.LDAITER,
		XformPasses:    vv.LDAXFORMPASSES,
		BurnInPasses:   vv.LDABURNINPASSES,
		ChangeEvalFrq:  vv.LDACHGEVALFRQ,
		PerplexEvalFrq: vv.LDAPERPEVALFRQ,
		PerplexTol:     vv.LDAPERPTOL,
		MinProbability: vv.LDAMINPROB,
		Seed:           vv.LDASEED,
		Goroutines:     runtime.NumCPU(),
	}
	return &c
}
