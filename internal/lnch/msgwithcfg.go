//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/str"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
)

// NewMessageMakerConfigured - a MessageMaker that honors the log level and color settings of cc
func NewMessageMakerConfigured(cc *str.CurrentConfiguration) *mm.MessageMaker {
	return mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION+VersSuppl, cc.LogLevel, cc.BlackAndWhite)
}

// NewMessageMakerWithDefaults - a MessageMaker for use before the configuration has been read
func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION+VersSuppl, vv.DEFAULTGOLOGLEVEL, vv.BLACKANDWHITE)
}

// UpdateMessageMakerWithConfig - bring an existing MessageMaker into line with cc
func UpdateMessageMakerWithConfig(m *mm.MessageMaker, cc *str.CurrentConfiguration) {
	m.BW = cc.BlackAndWhite
	m.LLvl = cc.LogLevel
}
