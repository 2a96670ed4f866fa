//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"fmt"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot/palette"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ColorMode - how word cloud words get their colors
type ColorMode int

const (
	ColorFixed ColorMode = iota
	ColorRandom
)

func (cm ColorMode) String() string {
	if cm == ColorRandom {
		return "random"
	}
	return "fixed"
}

// ParseColorMode - "fixed" or "random"
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "fixed", "":
		return ColorFixed, nil
	case "random":
		return ColorRandom, nil
	default:
		return ColorFixed, fmt.Errorf("unknown color mode '%s'", s)
	}
}

var (
	hslre = regexp.MustCompile(`^hsl\(\s*([\d.]+)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*\)$`)
	rgbre = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hexre = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
)

// ParseCSSColor - "hsl(245, 58%, 25%)", "rgb(40, 30, 100)" or "#281e64"
func ParseCSSColor(s string) (color.Color, error) {
	const (
		FAIL1 = "cannot parse color '%s'"
	)
	s = strings.TrimSpace(s)

	if m := hslre.FindStringSubmatch(s); m != nil {
		var f [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf(FAIL1, s)
			}
			f[i] = v
		}
		return hsl(f[0], f[1]/100, f[2]/100), nil
	}

	if m := rgbre.FindStringSubmatch(s); m != nil {
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return nil, fmt.Errorf(FAIL1, s)
			}
			c[i] = uint8(v)
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
	}

	if m := hexre.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 32)
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}

	return nil, fmt.Errorf(FAIL1, s)
}

// hsl - css hue in degrees, saturation and lightness in [0, 1]; converted through HSV
func hsl(h, s, l float64) color.Color {
	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	hsva := palette.HSVA{H: math.Mod(h, 360) / 360, S: sv, V: v, A: 1}
	return color.RGBAModel.Convert(hsva)
}

// randomcolor - the usual word cloud choice: any hue at 80% saturation, 50% lightness
func randomcolor(rng *rand.Rand) string {
	return fmt.Sprintf("hsl(%d, 80%%, 50%%)", rng.Intn(256))
}
