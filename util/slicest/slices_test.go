// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"strconv"
	"testing"
)

func TestMapAndMapI(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if len(got) != 3 || got[0] != "1" || got[2] != "3" {
		t.Fatalf("unexpected Map result: %v", got)
	}
	idx := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if idx[0] != "a0" || idx[1] != "b1" {
		t.Fatalf("unexpected MapI result: %v", idx)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	if sum != 10 {
		t.Fatalf("expected 10, got %d", sum)
	}
	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	if joined != "abc" {
		t.Fatalf("expected abc, got %q", joined)
	}
}

func TestIndexFunc(t *testing.T) {
	if i := IndexFunc([]int{5, 6, 7}, func(v int) bool { return v == 6 }); i != 1 {
		t.Fatalf("expected 1, got %d", i)
	}
	if i := IndexFunc([]int{}, func(int) bool { return true }); i != -1 {
		t.Fatalf("expected -1, got %d", i)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{0, 3, 0, 5}, func(v int) bool { return v > 0 })
	if len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Fatalf("unexpected Filter result: %v", got)
	}
	if got := Filter([]int{0}, func(v int) bool { return v > 0 }); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
