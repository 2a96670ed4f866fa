//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestBuiltinStops(t *testing.T) {
	tests := []struct {
		lang    string
		present string
		absent  string
	}{
		{"english", "the", "river"},
		{"latin", "qui", "facio"},
		{"greek", "καί", "θεόϲ"},
	}
	for _, tt := range tests {
		stops := BuiltinStops(tt.lang)
		if !slices.IsSorted(stops) {
			t.Errorf("%s: list is not sorted", tt.lang)
		}
		if !slices.Contains(stops, tt.present) {
			t.Errorf("%s: expected '%s' to be a stop word", tt.lang, tt.present)
		}
		if slices.Contains(stops, tt.absent) {
			t.Errorf("%s: did not expect '%s' to be a stop word", tt.lang, tt.absent)
		}
	}
}

func TestStopsFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := mm.NewSilentMessageMaker()

	stops, err := Stops("latin", dir, m)
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(dir, fmt.Sprintf(vv.CONFIGSTOPS, "latin"))
	if _, err = os.Stat(fn); err != nil {
		t.Fatalf("expected the default list to be written: %v", err)
	}
	if !slices.Equal(stops, BuiltinStops("latin")) {
		t.Error("first call should hand back the built-in list")
	}

	// an edited file wins
	b, _ := json.Marshal([]string{"arma"})
	if err = os.WriteFile(fn, b, 0644); err != nil {
		t.Fatal(err)
	}
	stops, _ = Stops("latin", dir, m)
	if !slices.Equal(stops, []string{"arma"}) {
		t.Errorf("expected the file on disk, got %v", stops)
	}
}

func TestStopsUnknown(t *testing.T) {
	if _, err := Stops("klingon", "", mm.NewSilentMessageMaker()); err == nil {
		t.Error("expected an unknown list to be refused")
	}
	stops, err := Stops("none", "", mm.NewSilentMessageMaker())
	if err != nil || len(stops) != 0 {
		t.Errorf("expected no stops, got %v (%v)", stops, err)
	}
}
