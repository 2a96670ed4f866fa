//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"bytes"
	"errors"
	"github.com/e-gun/HipparchiaLDAVis/internal/mallet"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"gonum.org/v1/plot/vg"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var aeneid = []str.TermWeight{
	{Term: "arma", Weight: 0.30},
	{Term: "virum", Weight: 0.20},
	{Term: "cano", Weight: 0.15},
	{Term: "troiae", Weight: 0.10},
	{Term: "oris", Weight: 0.08},
	{Term: "italiam", Weight: 0.07},
	{Term: "fato", Weight: 0.05},
	{Term: "profugus", Weight: 0.05},
	{Term: "nothing", Weight: 0},
}

// boxmeasurer - every glyph is 0.6em wide and 1em tall
func boxmeasurer(term string, size vg.Length) (vg.Length, vg.Length) {
	return vg.Length(float64(len(term))*0.6) * size, size
}

func TestLayoutWordsNoOverlap(t *testing.T) {
	o := DefaultWordleOpts()
	placed := LayoutWords(aeneid, o, boxmeasurer)

	if len(placed) == 0 {
		t.Fatal("nothing placed")
	}
	if placed[0].Term != "arma" {
		t.Errorf("heaviest word should go first, got %s", placed[0].Term)
	}

	w, h := vg.Length(o.Width), vg.Length(o.Height)
	for i, a := range placed {
		if a.Term == "nothing" {
			t.Error("a zero weight was placed")
		}
		ba := a.box()
		if ba.Min.X < 0 || ba.Min.Y < 0 || ba.Max.X > w || ba.Max.Y > h {
			t.Errorf("'%s' leaves the canvas: %v", a.Term, ba)
		}
		if a.Color != vv.WORDLECOLOR {
			t.Errorf("'%s' should have the fixed color, got %s", a.Term, a.Color)
		}
		for _, b := range placed[i+1:] {
			bb := b.box()
			if ba.Min.X < bb.Max.X && ba.Max.X > bb.Min.X && ba.Min.Y < bb.Max.Y && ba.Max.Y > bb.Min.Y {
				t.Errorf("'%s' overlaps '%s'", a.Term, b.Term)
			}
		}
	}
}

func TestLayoutWordsDeterministic(t *testing.T) {
	o := DefaultWordleOpts()
	o.Mode = ColorRandom
	a := LayoutWords(aeneid, o, boxmeasurer)
	b := LayoutWords(aeneid, o, boxmeasurer)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed, different layout")
	}

	for _, pw := range a {
		if !strings.HasPrefix(pw.Color, "hsl(") {
			t.Errorf("random mode should hand out hsl colors, got %s", pw.Color)
		}
		if _, err := ParseCSSColor(pw.Color); err != nil {
			t.Error(err)
		}
	}
}

func TestLayoutWordsShrinksOrDrops(t *testing.T) {
	o := DefaultWordleOpts()
	o.Width, o.Height = 60, 30
	placed := LayoutWords(aeneid, o, boxmeasurer)
	for _, pw := range placed {
		if pw.Size < vg.Length(o.MinFont) {
			t.Errorf("'%s' below the minimum font size: %v", pw.Term, pw.Size)
		}
	}
}

func TestWordleEmpty(t *testing.T) {
	if _, err := Wordle([]str.TermWeight{{Term: "x", Weight: 0}}, DefaultWordleOpts()); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestParseCSSColor(t *testing.T) {
	near := func(a, b uint8) bool { return int(a)-int(b) <= 2 && int(b)-int(a) <= 2 }

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"hsl(245, 58%, 25%)", color.RGBA{R: 33, G: 27, B: 101, A: 255}},
		{"hsl(0, 100%, 50%)", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"rgb(31, 119, 180)", color.RGBA{R: 31, G: 119, B: 180, A: 255}},
		{"#08306b", color.RGBA{R: 8, G: 48, B: 107, A: 255}},
	}
	for _, tt := range tests {
		c, err := ParseCSSColor(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		got := color.RGBAModel.Convert(c).(color.RGBA)
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) {
			t.Errorf("%s: expected %v, got %v", tt.in, tt.want, got)
		}
	}

	for _, bad := range []string{"blue", "rgb(300, 0, 0)", "#fff", "hsl(1,2,3)", "hsl(1.2.3, 50%, 50%)", "hsl(10, 5..0%, 50%)"} {
		if _, err := ParseCSSColor(bad); err == nil {
			t.Errorf("'%s' should not parse", bad)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	if cm, err := ParseColorMode("random"); err != nil || cm != ColorRandom {
		t.Errorf("random: %v %v", cm, err)
	}
	if cm, err := ParseColorMode(""); err != nil || cm != ColorFixed {
		t.Errorf("default: %v %v", cm, err)
	}
	if _, err := ParseColorMode("plaid"); err == nil {
		t.Error("expected an error")
	}
}

func TestPlotWordleFromMallet(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "weights.tsv")
	body := "0\tcat\t5\n0\tdog\t3\n1\tbone\t2\n"
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := PlotWordleFromMallet(fn, 0, 10, filepath.Join(dir, "out"), 72, DefaultWordleOpts())
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(out) != "wordle_tp000.png" {
		t.Errorf("unexpected file name %s", out)
	}
	if _, err = os.Stat(out); err != nil {
		t.Error(err)
	}

	if _, err = PlotWordleFromMallet(fn, 4, 10, dir, 72, DefaultWordleOpts()); !errors.Is(err, mallet.ErrNoSuchTopic) {
		t.Errorf("expected ErrNoSuchTopic, got %v", err)
	}
}

func TestPlotWordleFromGrouped(t *testing.T) {
	rows, err := mallet.ReadWordWeights(strings.NewReader("0\tcat\t5\n0\tdog\t3\n1\tbone\t2\n"))
	if err != nil {
		t.Fatal(err)
	}
	g := mallet.Group(rows)

	dir := t.TempDir()
	out, err := PlotWordleFromGrouped(g, 1, 10, dir, 72, DefaultWordleOpts())
	if err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(out); err != nil {
		t.Error(err)
	}

	blocker := filepath.Join(dir, "blocker")
	if err = os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err = PlotWordleFromGrouped(g, 0, 10, filepath.Join(blocker, "out"), 72, DefaultWordleOpts())
	if err == nil || errors.Is(err, ErrSaveSkipped) {
		t.Errorf("an output folder that cannot be made should fail, got %v", err)
	}
}

func TestWordCloudChartColors(t *testing.T) {
	o := DefaultWordleOpts()

	var buf bytes.Buffer
	if err := WordCloudChart(aeneid, "Topic #1", o).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), vv.WORDLECOLOR) {
		t.Error("fixed mode should carry the fixed color")
	}

	o.Mode = ColorRandom
	buf.Reset()
	if err := WordCloudChart(aeneid, "Topic #1", o).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), vv.WORDLECOLOR) || !strings.Contains(buf.String(), "Math.random") {
		t.Error("random mode should leave the colors to echarts")
	}
}
