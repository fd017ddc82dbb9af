package domain

import (
	"context"
	"time"
)

// NewsProvider issues one search query against the external provider and
// returns raw candidate articles.
type NewsProvider interface {
	SearchNews(ctx context.Context, query string, loc Locale) ([]Article, error)
}

// RelevanceFilter decides whether an article genuinely concerns the company.
type RelevanceFilter interface {
	Relevant(article Article, company Company) bool
}

// Summarizer produces display-ready title and summary text for an article.
type Summarizer interface {
	Title(article Article, company Company) string
	Summary(article Article, company Company) string
}

// Tagger classifies the article source and extracts topical tags.
type Tagger interface {
	Source(sourceName string) Source
	Tags(article Article, company Company) []string
}

// Scorer assigns an engagement score in [1,100].
type Scorer interface {
	Score(article Article, publishedAt, now time.Time) int
}

// Ranker prunes and orders built feed items.
type Ranker interface {
	Deduplicate(items []FeedItem) []FeedItem
	Sort(items []FeedItem)
	Highlights(items []FeedItem, threshold, limit int) []FeedItem
}

// FeedService builds the portfolio news feed.
type FeedService interface {
	Aggregate(ctx context.Context) (AggregateResult, error)
	CompanyNews(ctx context.Context, company Company) ([]FeedItem, error)
}

// Cache is a simple TTL byte store.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// RefreshQueue carries refresh jobs between the API and the worker.
type RefreshQueue interface {
	Enqueue(ctx context.Context, job RefreshJob) error
	Pop(ctx context.Context) (RefreshJob, error)
}

// Notifier delivers a highlights digest to an external channel.
type Notifier interface {
	NotifyHighlights(ctx context.Context, items []FeedItem) error
}
