//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"strings"
	"time"
)

// NewEchoServer - the browser for the rendered output; routes and middleware only, nothing is started
func NewEchoServer(cc *str.CurrentConfiguration, m *mm.MessageMaker) *echo.Echo {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		}
		last := ua[len(ua)-1]
		buf.Write([]byte(last))
		return 1, nil
	}

	//
	// SETUP
	//

	e := echo.New()

	switch cc.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.Recover())

	//
	// ROUTES
	//

	fp := frontpage{cc: cc, m: m, up: time.Now()}

	// [a] frontpage ("rt-frontpage.go")

	e.GET("/", fp.RtFrontpage)

	// [b] the listing as json

	e.GET("/get/json/outputs", fp.RtGetJSOutputs)

	// [c] the files themselves

	e.Static("/out", cc.OutputDir)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	return e
}

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer(cc *str.CurrentConfiguration, m *mm.MessageMaker) error {
	e := NewEchoServer(cc, m)
	m.MAND(fmt.Sprintf("browse the visualizations at http://%s:%d/", cc.HostIP, cc.HostPort))
	return e.Start(fmt.Sprintf("%s:%d", cc.HostIP, cc.HostPort))
}
