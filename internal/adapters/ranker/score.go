// Package ranker assigns engagement scores to feed items and derives the
// ranking views built on them: deduplication, chronological ordering and
// highlight selection.
package ranker

import (
	"strings"
	"time"

	"portfolio-pulse/internal/domain"
)

const baseScore = 50

// highImpactKeywords add 15 points each when present in the text.
var highImpactKeywords = []string{
	"raises", "funding", "series", "million", "billion", "acquisition", "ipo",
	"breakthrough", "partnership", "launch", "approved", "expansion",
}

// mediumImpactKeywords add 8 points each when present.
var mediumImpactKeywords = []string{
	"announces", "growth", "hiring", "technology", "innovation", "platform",
}

// HeuristicScorer computes engagement scores from keyword signals and the
// resolved article age. The result is always within [1,100].
type HeuristicScorer struct{}

var _ domain.Scorer = (*HeuristicScorer)(nil)

// NewScorer creates the scorer.
func NewScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

// Score rates an article. The recency bonus is derived from the resolved
// publish timestamp, so identical inputs always produce identical scores.
func (s *HeuristicScorer) Score(article domain.Article, publishedAt, now time.Time) int {
	text := strings.ToLower(article.Title + " " + article.BestContent())

	score := baseScore
	for _, keyword := range highImpactKeywords {
		if strings.Contains(text, keyword) {
			score += 15
		}
	}
	for _, keyword := range mediumImpactKeywords {
		if strings.Contains(text, keyword) {
			score += 8
		}
	}

	age := now.Sub(publishedAt)
	switch {
	case age < 24*time.Hour:
		score += 20
	case age < 7*24*time.Hour:
		score += 10
	case age < 30*24*time.Hour:
		score += 5
	}

	if score > 100 {
		return 100
	}
	if score < 1 {
		return 1
	}
	return score
}
