package ranker

import (
	"testing"
	"time"

	"portfolio-pulse/internal/domain"
)

func TestScoreBaseWithRecency(t *testing.T) {
	s := NewScorer()
	now := time.Now()
	score := s.Score(domain.Article{Title: "quiet quarter"}, now.Add(-time.Hour), now)
	if score != 70 {
		t.Fatalf("expected base plus fresh bonus 70, got %d", score)
	}
}

func TestScoreRecencyTiers(t *testing.T) {
	s := NewScorer()
	now := time.Now()
	cases := []struct {
		age  time.Duration
		want int
	}{
		{time.Hour, 70},
		{3 * 24 * time.Hour, 60},
		{20 * 24 * time.Hour, 55},
		{60 * 24 * time.Hour, 50},
	}
	for _, tc := range cases {
		if got := s.Score(domain.Article{Title: "quiet quarter"}, now.Add(-tc.age), now); got != tc.want {
			t.Fatalf("age %v: expected %d, got %d", tc.age, tc.want, got)
		}
	}
}

func TestScoreClampsAtHundred(t *testing.T) {
	s := NewScorer()
	now := time.Now()
	article := domain.Article{Title: "Acme raises funding, series valued in the millions before ipo"}
	if got := s.Score(article, now.Add(-60*24*time.Hour), now); got != 100 {
		t.Fatalf("expected clamp at 100, got %d", got)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	s := NewScorer()
	now := time.Now()
	article := domain.Article{Title: "Acme announces growth"}
	first := s.Score(article, now.Add(-time.Hour), now)
	second := s.Score(article, now.Add(-time.Hour), now)
	if first != second {
		t.Fatalf("expected identical inputs to score identically: %d vs %d", first, second)
	}
}

func TestDeduplicateKeepsFirst(t *testing.T) {
	r := NewRanker()
	items := []domain.FeedItem{
		{ID: "a", Title: "Arc raises funding", OriginalURL: "https://example.com/1"},
		{ID: "b", Title: "Arc raises funding", OriginalURL: "https://example.com/1"},
		{ID: "c", Title: "Arc raises funding", OriginalURL: "https://example.com/2"},
	}
	out := r.Deduplicate(items)
	if len(out) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out))
	}
	if out[0].ID != "a" {
		t.Fatalf("expected the first occurrence to survive, got %s", out[0].ID)
	}
}

func TestSortNewestFirst(t *testing.T) {
	r := NewRanker()
	now := time.Now()
	items := []domain.FeedItem{
		{ID: "old", Timestamp: now.Add(-48 * time.Hour)},
		{ID: "new", Timestamp: now},
		{ID: "mid", Timestamp: now.Add(-24 * time.Hour)},
	}
	r.Sort(items)
	if items[0].ID != "new" || items[2].ID != "old" {
		t.Fatalf("unexpected order: %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestHighlightsThresholdAndCap(t *testing.T) {
	r := NewRanker()
	items := []domain.FeedItem{
		{ID: "a", EngagementScore: 95},
		{ID: "b", EngagementScore: 60},
		{ID: "c", EngagementScore: 72},
		{ID: "d", EngagementScore: 70},
	}
	got := r.Highlights(items, 70, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 highlights, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected score-descending order, got %s %s", got[0].ID, got[1].ID)
	}

	if got := r.Highlights(items, 50, 1); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected the cap to keep only the top item, got %v", got)
	}
}
