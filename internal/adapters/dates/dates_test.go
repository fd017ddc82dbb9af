package dates

import (
	"testing"
	"time"
)

func TestResolveRelative(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2 hours ago", now.Add(-2 * time.Hour)},
		{"45 minutes ago", now.Add(-45 * time.Minute)},
		{"3 days ago", now.Add(-3 * 24 * time.Hour)},
		{"1 week ago", now.Add(-7 * 24 * time.Hour)},
		{"2 months ago", now.Add(-60 * 24 * time.Hour)},
	}
	for _, tc := range cases {
		if got := Resolve(tc.raw, now); !got.Equal(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestResolveAbsolute(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := Resolve("2024-01-02", now)
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 2 {
		t.Fatalf("unexpected parse result: %v", got)
	}
}

func TestResolveFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Resolve("", now); !got.Equal(now) {
		t.Fatalf("expected empty input to resolve to now, got %v", got)
	}
	if got := Resolve("sometime soon ago", now); !got.Equal(now) {
		t.Fatalf("expected unparseable relative input to resolve to now, got %v", got)
	}
	if got := Resolve("not a date", now); !got.Equal(now) {
		t.Fatalf("expected garbage input to resolve to now, got %v", got)
	}
}
