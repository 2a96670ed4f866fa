//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mallet"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"math"
	"path/filepath"
	"slices"
)

// WordleOpts - size, margin, and colors of a word cloud; sizes are pixels at 72 dpi
type WordleOpts struct {
	Width   int
	Height  int
	Margin  int
	Mode    ColorMode
	Color   string
	Seed    uint64
	Title   string
	MaxFont float64
	MinFont float64
}

// DefaultWordleOpts - 600x400, margin 4, uniform dark blue
func DefaultWordleOpts() WordleOpts {
	return WordleOpts{
		Width:   vv.WORDLEWIDTH,
		Height:  vv.WORDLEHEIGHT,
		Margin:  vv.WORDLEMARGIN,
		Mode:    ColorFixed,
		Color:   vv.WORDLECOLOR,
		Seed:    1,
		MaxFont: 0,
		MinFont: 4,
	}
}

// ColorScale - the css color every word gets in ColorFixed mode
func (o WordleOpts) ColorScale() string {
	if o.Color == "" {
		return vv.WORDLECOLOR
	}
	return o.Color
}

// PlacedWord - a word with its font size and the center of its box
type PlacedWord struct {
	Term  string
	Size  vg.Length
	X     vg.Length
	Y     vg.Length
	W     vg.Length
	H     vg.Length
	Color string
}

func (pw PlacedWord) box() vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: pw.X - pw.W/2, Y: pw.Y - pw.H/2},
		Max: vg.Point{X: pw.X + pw.W/2, Y: pw.Y + pw.H/2},
	}
}

// Measurer - width and height of a word at a font size
type Measurer func(term string, size vg.Length) (vg.Length, vg.Length)

func plotmeasurer(term string, size vg.Length) (vg.Length, vg.Length) {
	sty := wordstyle(size, color.Black)
	return sty.Width(term), sty.Height(term)
}

func wordstyle(size vg.Length, c color.Color) text.Style {
	return text.Style{
		Color:   c,
		Font:    font.From(plot.DefaultFont, size),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// LayoutWords - place the heaviest words first on an archimedean spiral out from the center; a word that will not
// fit shrinks until it reaches MinFont and is then dropped
func LayoutWords(tw []str.TermWeight, o WordleOpts, measure Measurer) []PlacedWord {
	const (
		STEP   = 0.1 // radians
		SHRINK = 0.9
	)

	words := slices.Clone(tw)
	slices.SortStableFunc(words, func(a, b str.TermWeight) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
	words = slices.DeleteFunc(words, func(w str.TermWeight) bool { return w.Weight <= 0 || w.Term == "" })
	if len(words) == 0 {
		return nil
	}

	w, h := vg.Length(o.Width), vg.Length(o.Height)
	mg := vg.Length(o.Margin)
	bounds := vg.Rectangle{Min: vg.Point{X: mg, Y: mg}, Max: vg.Point{X: w - mg, Y: h - mg}}
	cx, cy := w/2, h/2
	aspect := float64(w) / float64(h)

	maxfs := vg.Length(o.MaxFont)
	if maxfs <= 0 {
		maxfs = (h - 2*mg) * 0.3
	}
	minfs := vg.Length(o.MinFont)
	if minfs <= 0 {
		minfs = 4
	}

	rng := rand.New(rand.NewSource(o.Seed))
	maxsteps := int(math.Hypot(float64(w), float64(h)) / STEP)
	top := words[0].Weight

	var placed []PlacedWord

	fits := func(r vg.Rectangle) bool {
		if r.Min.X < bounds.Min.X || r.Min.Y < bounds.Min.Y || r.Max.X > bounds.Max.X || r.Max.Y > bounds.Max.Y {
			return false
		}
		for _, p := range placed {
			b := p.box()
			if r.Min.X < b.Max.X+mg && r.Max.X+mg > b.Min.X && r.Min.Y < b.Max.Y+mg && r.Max.Y+mg > b.Min.Y {
				return false
			}
		}
		return true
	}

	for _, word := range words {
		clr := o.ColorScale()
		if o.Mode == ColorRandom {
			clr = randomcolor(rng)
		}

		fs := vg.Length(math.Max(float64(maxfs)*word.Weight/top, float64(minfs)))
		for fs >= minfs {
			ww, hh := measure(word.Term, fs)
			pw := PlacedWord{Term: word.Term, Size: fs, W: ww, H: hh, Color: clr}
			found := false
			for s := 0; s < maxsteps; s++ {
				theta := float64(s) * STEP
				r := theta
				pw.X = cx + vg.Length(r*math.Cos(theta)*aspect)
				pw.Y = cy + vg.Length(r*math.Sin(theta))
				if fits(pw.box()) {
					found = true
					break
				}
			}
			if found {
				placed = append(placed, pw)
				break
			}
			fs *= SHRINK
		}
	}
	return placed
}

// Wordle - a word cloud of tw as a Figure
func Wordle(tw []str.TermWeight, o WordleOpts) (*Figure, error) {
	const (
		FAIL1 = "%w: no words with positive weight"
		TBAND = 24
	)

	wo := o
	if o.Title != "" {
		wo.Height -= TBAND
	}

	placed := LayoutWords(tw, wo, plotmeasurer)
	if len(placed) == 0 {
		return nil, fmt.Errorf(FAIL1, ErrEmpty)
	}

	colors := make(map[string]color.Color)
	for _, pw := range placed {
		if _, ok := colors[pw.Color]; ok {
			continue
		}
		c, err := ParseCSSColor(pw.Color)
		if err != nil {
			return nil, err
		}
		colors[pw.Color] = c
	}

	paint := func(dc draw.Canvas) {
		for _, pw := range placed {
			pt := vg.Point{X: dc.Min.X + pw.X, Y: dc.Min.Y + pw.Y}
			dc.FillText(wordstyle(pw.Size, colors[pw.Color]), pt, pw.Term)
		}
		if o.Title != "" {
			pt := vg.Point{X: dc.Min.X + vg.Length(o.Width)/2, Y: dc.Min.Y + vg.Length(o.Height) - TBAND/2}
			dc.FillText(wordstyle(14, color.Black), pt, o.Title)
		}
	}

	return &Figure{Width: vg.Length(o.Width), Height: vg.Length(o.Height), paint: paint}, nil
}

// ShowWordleForTopic - word cloud of the heaviest terms of a model topic, titled "Topic #n+1"
func ShowWordleForTopic(tm str.TopicModel, topic int, words int, o WordleOpts) (*Figure, error) {
	tw, err := tm.ShowTopic(topic, words)
	if err != nil {
		return nil, err
	}
	return topicwordle(tw, topic, o)
}

func topicwordle(tw []str.TermWeight, topic int, o WordleOpts) (*Figure, error) {
	o.Title = fmt.Sprintf("Topic #%d", topic+1)
	return Wordle(tw, o)
}

// PlotWordleFromLDA - untitled word cloud of a model topic at the given pixel size
func PlotWordleFromLDA(tm str.TopicModel, topic int, words int, width int, height int, o WordleOpts) (*Figure, error) {
	tw, err := tm.ShowTopic(topic, words)
	if err != nil {
		return nil, err
	}
	o.Width, o.Height, o.Title = width, height, ""
	return Wordle(tw, o)
}

// WordleFileName - "wordle_tp007.png"
func WordleFileName(topic int) string {
	return fmt.Sprintf(vv.WORDLEFILE, topic)
}

// PlotWordleFromMallet - read the word-weights file and write outfolder/wordle_tp###.png for one topic
func PlotWordleFromMallet(fn string, topic int, words int, outfolder string, dpi int, o WordleOpts) (string, error) {
	rows, err := mallet.ReadWordWeightsFile(fn)
	if err != nil {
		return "", err
	}
	return PlotWordleFromGrouped(mallet.Group(rows), topic, words, outfolder, dpi, o)
}

// PlotWordleFromGrouped - as PlotWordleFromMallet for rows that have already been read and grouped
func PlotWordleFromGrouped(g mallet.Grouped, topic int, words int, outfolder string, dpi int, o WordleOpts) (string, error) {
	tw, err := mallet.TopWords(g, words, topic)
	if err != nil {
		return "", err
	}

	o.Title = fmt.Sprintf("topic %d", topic)
	fig, err := Wordle(tw, o)
	if err != nil {
		return "", err
	}

	out := filepath.Join(outfolder, WordleFileName(topic))
	return out, fig.Save(out, "png", dpi)
}
