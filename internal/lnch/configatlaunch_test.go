//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFlags(t *testing.T) {
	cfg := BuildDefaultConfig()
	args := strings.Fields("-cd ./texts -tp 12 -hm doctopics -hx svg -dp 300 -ia -la 0.3 -rt 15 -wc random -sv -sp 8123")
	act, err := ApplyFlags(cfg, args)
	if err != nil {
		t.Fatal(err)
	}
	if act != ActRun {
		t.Errorf("expected ActRun, got %d", act)
	}

	if cfg.CorpusDir != "./texts" || cfg.LDA.Topics != 12 || cfg.DPI != 300 || cfg.HostPort != 8123 {
		t.Errorf("values not applied: %+v", cfg)
	}
	if cfg.HeatmapName != "doctopics" || cfg.HeatmapExt != "svg" {
		t.Errorf("heatmap name not applied: %s.%s", cfg.HeatmapName, cfg.HeatmapExt)
	}
	if cfg.Lambda != 0.3 || cfg.RelevanceTerms != 15 {
		t.Errorf("relevance not applied: %f %d", cfg.Lambda, cfg.RelevanceTerms)
	}
	if !cfg.Interactive || !cfg.Serve || cfg.WordleColor != "random" {
		t.Errorf("switches not applied: %+v", cfg)
	}
}

func TestApplyFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"missing value", "-tp", "requires a value"},
		{"not a number", "-tp many", "is not a number"},
		{"bad color mode", "-wc plaid", "unknown word cloud color mode"},
		{"lambda out of range", "-la 1.5", "lambda must lie in [0, 1]"},
		{"lambda not a number", "-la half", "is not a number"},
		{"lambda NaN", "-la NaN", "lambda must lie in [0, 1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyFlags(BuildDefaultConfig(), strings.Fields(tt.args))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected '%s', got %v", tt.want, err)
			}
		})
	}
}

func TestApplyFlagsActions(t *testing.T) {
	tests := map[string]Action{
		"-h":  ActHelp,
		"-v":  ActVersion,
		"-vv": ActFullVersion,
	}
	for flag, want := range tests {
		act, err := ApplyFlags(BuildDefaultConfig(), []string{flag})
		if err != nil || act != want {
			t.Errorf("%s: expected %d, got %d (%v)", flag, want, act, err)
		}
	}
}

func TestConfigFileFromArgs(t *testing.T) {
	if fn := ConfigFileFromArgs([]string{"-tp", "3", "-cf", "/tmp/x.json"}); fn != "/tmp/x.json" {
		t.Errorf("unexpected config file %s", fn)
	}
	if fn := ConfigFileFromArgs(nil); !strings.HasSuffix(fn, vv.CONFIGBASIC) {
		t.Errorf("unexpected default config file %s", fn)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg := BuildDefaultConfig()
	loaded, err := LoadConfigFile(cfg, filepath.Join(dir, "absent.json"))
	if loaded || err != nil {
		t.Errorf("a missing file should be silently skipped: %t %v", loaded, err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err = os.WriteFile(bad, []byte(`{"OutputDir": "elsewhere", `), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err = LoadConfigFile(cfg, bad)
	if loaded || err == nil {
		t.Error("expected the broken file to be refused")
	}
	if cfg.OutputDir != vv.DEFAULTOUTPUTDIR {
		t.Errorf("a failed load should leave the config alone, got %s", cfg.OutputDir)
	}

	good := filepath.Join(dir, "good.json")
	if err = os.WriteFile(good, []byte(`{"OutputDir": "elsewhere", "LDA": {"Topics": 7}}`), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err = LoadConfigFile(cfg, good)
	if !loaded || err != nil {
		t.Fatalf("expected the file to load: %v", err)
	}
	if cfg.OutputDir != "elsewhere" || cfg.LDA.Topics != 7 {
		t.Errorf("values not overlaid: %s %d", cfg.OutputDir, cfg.LDA.Topics)
	}
	if cfg.HeatmapName != vv.HEATMAPFILE {
		t.Errorf("values absent from the file should survive, got %s", cfg.HeatmapName)
	}
}

func TestHelpText(t *testing.T) {
	m := mm.NewSilentMessageMaker()
	h := HelpText(BuildDefaultConfig(), m)
	for _, flag := range []string{"-cd", "-mw", "-wc"} {
		if !strings.Contains(h, flag) {
			t.Errorf("help text does not mention %s", flag)
		}
	}
}
