//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"cmp"
	"embed"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/lnch"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"github.com/labstack/echo/v4"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"
)

//go:embed emb
var efs embed.FS

// OutputFile - one rendered file in the output folder
type OutputFile struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Bytes int64  `json:"bytes"`
	URL   string `json:"url"`
}

type frontpage struct {
	cc *str.CurrentConfiguration
	m  *mm.MessageMaker
	up time.Time
}

//
// ROUTING
//

// RtFrontpage - send the html for "/"
func (fp frontpage) RtFrontpage(c echo.Context) error {
	const (
		UPSTR = "[%v] %s uptime: %v"
	)

	files, err := ListOutputs(fp.cc.OutputDir)
	if err != nil {
		fp.m.WARN(fmt.Sprintf("RtFrontpage() cannot read '%s': %s", fp.cc.OutputDir, err.Error()))
	}

	gc := lnch.GitCommit
	if gc == "" {
		gc = "UNKNOWN"
	}

	subs := map[string]interface{}{
		"title":   vv.MYNAME,
		"longver": fmt.Sprintf("Version: %s [git: %s]", vv.VERSION+lnch.VersSuppl, gc),
		"env":     fmt.Sprintf("%s: %s - %s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
		"ticker":  fmt.Sprintf(UPSTR, time.Now().Format(time.TimeOnly), vv.SHORTNAME, time.Since(fp.up).Truncate(time.Second)),
		"outdir":  fp.cc.OutputDir,
		"files":   files,
	}

	f, e := efs.ReadFile("emb/frontpage.html")
	if e != nil {
		fp.m.EC(e)
		return c.String(http.StatusInternalServerError, "")
	}

	tmpl, e := template.New("fp").Parse(string(f))
	if e != nil {
		fp.m.EC(e)
		return c.String(http.StatusInternalServerError, "")
	}

	var b bytes.Buffer
	if e = tmpl.Execute(&b, subs); e != nil {
		fp.m.EC(e)
		return c.String(http.StatusInternalServerError, "")
	}

	return c.HTML(http.StatusOK, b.String())
}

// RtGetJSOutputs - the output folder as json
func (fp frontpage) RtGetJSOutputs(c echo.Context) error {
	files, err := ListOutputs(fp.cc.OutputDir)
	if err != nil {
		fp.m.WARN(fmt.Sprintf("RtGetJSOutputs() cannot read '%s': %s", fp.cc.OutputDir, err.Error()))
		return c.JSONPretty(http.StatusOK, []OutputFile{}, vv.JSONINDENT)
	}
	return c.JSONPretty(http.StatusOK, files, vv.JSONINDENT)
}

// ListOutputs - images, pages and json in dir, alphabetically; a missing dir is an empty listing
func ListOutputs(dir string) ([]OutputFile, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []OutputFile{}, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]OutputFile, 0, len(entries))
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		k := kind(de.Name())
		if k == "" {
			continue
		}
		var sz int64
		if fi, e := de.Info(); e == nil {
			sz = fi.Size()
		}
		files = append(files, OutputFile{
			Name:  de.Name(),
			Kind:  k,
			Bytes: sz,
			URL:   "/out/" + de.Name(),
		})
	}

	slices.SortFunc(files, func(a, b OutputFile) int { return cmp.Compare(a.Name, b.Name) })
	return files, nil
}

func kind(fn string) string {
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".png", ".jpg", ".jpeg", ".svg":
		return "image"
	case ".html":
		return "page"
	case ".json":
		return "data"
	case ".pdf", ".tif", ".tiff":
		return "download"
	default:
		return ""
	}
}
