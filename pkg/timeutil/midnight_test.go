package timeutil

import (
	"testing"
	"time"
)

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, time.October, 17, 21, 30, 0, 0, time.Local)
	got := NextMidnight(now)
	want := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("NextMidnight = %v, want %v", got, want)
	}
}

func TestNextMidnightMonthEnd(t *testing.T) {
	now := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.Local)
	got := NextMidnight(now)
	want := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("NextMidnight = %v, want %v", got, want)
	}
}

func TestUntilNextMidnight(t *testing.T) {
	now := time.Date(2026, time.October, 17, 23, 0, 0, 0, time.Local)
	if got := UntilNextMidnight(now); got != time.Hour {
		t.Fatalf("UntilNextMidnight = %v, want 1h", got)
	}
	atMidnight := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)
	if got := UntilNextMidnight(atMidnight); got <= 0 {
		t.Fatalf("UntilNextMidnight at midnight = %v, want positive", got)
	}
}
