//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotBuilt    = errors.New("nothing built yet")
	ErrSaveSkipped = errors.New("save skipped")
	ErrFormat      = errors.New("unsupported image format")
	ErrEmpty       = errors.New("nothing to draw")
)

const (
	// matplotlib's default figure is 6.4in x 4.8in
	DEFAULTFIGW = 6.4 * vg.Inch
	DEFAULTFIGH = 4.8 * vg.Inch
	LARGEFIGW   = 20 * vg.Inch
	LARGEFIGH   = 20 * vg.Inch
)

// Figure - something that knows how to paint itself onto a canvas of a given size
type Figure struct {
	Width  vg.Length
	Height vg.Length
	paint  func(dc draw.Canvas)
}

// NewPlotFigure - wrap a gonum plot
func NewPlotFigure(p *plot.Plot, w, h vg.Length) *Figure {
	return &Figure{Width: w, Height: h, paint: p.Draw}
}

// WriteTo - render as ext; dpi only matters for the raster formats
func (f *Figure) WriteTo(w io.Writer, ext string, dpi int) (int64, error) {
	const (
		FAIL1 = "%w: '%s' (use png, jpg, tif, svg or pdf)"
	)

	if dpi <= 0 {
		dpi = vv.HEATMAPDPI
	}

	raster := func() *vgimg.Canvas {
		c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
		f.paint(draw.New(c))
		return c
	}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}.WriteTo(w)
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}.WriteTo(w)
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}.WriteTo(w)
	case "svg":
		c := vgsvg.New(f.Width, f.Height)
		f.paint(draw.New(c))
		return c.WriteTo(w)
	case "pdf":
		c := vgpdf.New(f.Width, f.Height)
		f.paint(draw.New(c))
		return c.WriteTo(w)
	default:
		return 0, fmt.Errorf(FAIL1, ErrFormat, ext)
	}
}

// Save - write the figure to fn, creating the folder if needed
func (f *Figure) Save(fn string, ext string, dpi int) error {
	out, err := createoutput(fn)
	if err != nil {
		return err
	}
	if _, err = f.WriteTo(out, ext, dpi); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// createoutput - make the parent folder and open fn for writing; only a file that vanishes from an existing folder comes back as ErrSaveSkipped
func createoutput(fn string) (*os.File, error) {
	const (
		FAIL1 = "cannot create folder '%s': %w"
		FAIL2 = "%w: cannot create '%s': %v"
	)
	dir := filepath.Dir(fn)
	if err := os.MkdirAll(dir, vv.DIRPERMS); err != nil {
		return nil, fmt.Errorf(FAIL1, dir, err)
	}
	f, err := os.Create(fn)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(FAIL2, ErrSaveSkipped, fn, err)
	}
	return f, err
}
