//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
	"testing"
)

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	if got := SetSubtraction(aa, bb); !slices.Equal(got, []string{"c", "d", "h"}) {
		t.Errorf("expected [c d h], got %v", got)
	}
}

func TestSortedKeys(t *testing.T) {
	mp := map[int]string{3: "c", 0: "a", 1: "b"}
	if got := SortedKeys(mp); !slices.Equal(got, []int{0, 1, 3}) {
		t.Errorf("expected [0 1 3], got %v", got)
	}

	keys := StringMapKeysIntoSlice(ToSet([]string{"x", "y", "x"}))
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"x", "y"}) {
		t.Errorf("expected [x y], got %v", keys)
	}
}
