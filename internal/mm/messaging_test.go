//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEmitThreshold(t *testing.T) {
	var buf bytes.Buffer
	m := NewMessageMaker("HipparchiaLDAVis", "HLV", "0.0.1", MSGNOTE, true)
	m.Out = &buf

	m.CRIT("crit")
	m.WARN("warn")
	m.NOTE("note")
	m.FYI("fyi")
	m.TMI("tmi")

	got := buf.String()
	for _, want := range []string{"[HLV] crit\n", "[HLV] warn\n", "[HLV] note\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	for _, quiet := range []string{"fyi", "tmi"} {
		if strings.Contains(got, quiet) {
			t.Errorf("'%s' is above the log level and should not print", quiet)
		}
	}
}

func TestEmitColor(t *testing.T) {
	var buf bytes.Buffer
	m := NewMessageMaker("HipparchiaLDAVis", "HLV", "0.0.1", MSGWARN, false)
	m.Out = &buf
	m.Win = false

	m.CRIT("crit")
	if !strings.Contains(buf.String(), RED1+"crit"+RESET) {
		t.Errorf("expected a red message, got %q", buf.String())
	}
}

func TestSilentMessageMaker(t *testing.T) {
	m := NewSilentMessageMaker()
	m.MAND("nobody hears this")
	m.Timer("A", "nor this", time.Now(), time.Now())
	if m.LLvl >= MSGMAND {
		t.Error("the silent logger should sit below every threshold")
	}
}

func TestColStyle(t *testing.T) {
	bw := NewMessageMaker("", "", "", MSGFYI, true)
	if got := bw.ColStyle("C1-cdC0 S1boldS0"); got != "-cd bold" {
		t.Errorf("black and white should strip the tags, got %q", got)
	}

	c := NewMessageMaker("", "", "", MSGFYI, false)
	c.Win = false
	if got := c.Color("C4okC0"); got != GREEN+"ok"+RESET {
		t.Errorf("unexpected color %q", got)
	}
}

func TestWithCaller(t *testing.T) {
	m := NewMessageMaker("", "HLV", "", MSGWARN, true)
	c := m.WithCaller("MakeHeatmap()")
	if c.Clr != "MakeHeatmap()" || c.SNm != "HLV" || c.LLvl != MSGWARN {
		t.Errorf("unexpected copy %+v", c)
	}
	if m.Clr != "" {
		t.Error("the original should be untouched")
	}
}
