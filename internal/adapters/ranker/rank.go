package ranker

import (
	"sort"

	"portfolio-pulse/internal/domain"
)

// StandardRanker implements deduplication, chronological ordering and
// highlight selection over built feed items.
type StandardRanker struct{}

var _ domain.Ranker = (*StandardRanker)(nil)

// NewRanker creates the ranker.
func NewRanker() *StandardRanker {
	return &StandardRanker{}
}

// Deduplicate removes items whose (title, originalUrl) pair was already
// seen, keeping the first occurrence.
func (r *StandardRanker) Deduplicate(items []domain.FeedItem) []domain.FeedItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		key := item.Title + "\x00" + item.OriginalURL
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Sort orders items newest first, in place.
func (r *StandardRanker) Sort(items []domain.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
}

// Highlights returns the items scoring above threshold, sorted by score
// descending and capped at limit.
func (r *StandardRanker) Highlights(items []domain.FeedItem, threshold, limit int) []domain.FeedItem {
	picked := make([]domain.FeedItem, 0, limit)
	for _, item := range items {
		if item.EngagementScore > threshold {
			picked = append(picked, item)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].EngagementScore > picked[j].EngagementScore
	})
	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}
