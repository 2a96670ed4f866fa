//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"strings"
	"testing"
)

func TestVersionLine(t *testing.T) {
	m := mm.NewMessageMaker("", "", "", mm.MSGFYI, true)
	GitCommit = "64974732"
	defer func() { GitCommit = "" }()

	vl := VersionLine(*BuildDefaultConfig(), m)
	for _, want := range []string{"[" + vv.SHORTNAME + "]", vv.MYNAME, "git: 64974732"} {
		if !strings.Contains(vl, want) {
			t.Errorf("expected '%s' in '%s'", want, vl)
		}
	}
}
