package domain

import (
	"strings"
	"time"
)

// Company describes one tracked portfolio company. Records are loaded once
// from the registry at startup and never mutated afterwards.
type Company struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Logo        string   `json:"logo,omitempty"`
	Website     string   `json:"website,omitempty"`
	SearchTerms []string `json:"searchTerms,omitempty"`
}

// Article is a raw, unprocessed result from the search provider. It lives
// only within one pipeline invocation.
type Article struct {
	Position    int
	Title       string
	Snippet     string
	Description string
	Summary     string
	Excerpt     string
	Content     string
	SourceName  string
	SourceIcon  string
	Authors     []string
	Link        string
	Thumbnail   string
	Date        string
}

// BestContent picks the most descriptive text field of the article. The
// priority cascade is content > excerpt > description > summary > snippet;
// the longest non-empty candidate wins, earlier fields win ties.
func (a Article) BestContent() string {
	best := ""
	for _, candidate := range []string{a.Content, a.Excerpt, a.Description, a.Summary, a.Snippet} {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	return best
}

// Source classifies where a feed item was published.
type Source string

const (
	SourceLinkedIn Source = "linkedin"
	SourceTwitter  Source = "twitter"
	SourceNews     Source = "news"
	SourceBlog     Source = "blog"
	SourceOther    Source = "other"
)

// FeedItem is the pipeline output unit and the contract with the UI.
// Bookmarked and Read are the only fields mutated after creation, and only
// in response to user action.
type FeedItem struct {
	ID              string    `json:"id"`
	Company         Company   `json:"company"`
	Source          Source    `json:"source"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	Timestamp       time.Time `json:"timestamp"`
	OriginalURL     string    `json:"originalUrl"`
	Tags            []string  `json:"tags"`
	Bookmarked      bool      `json:"bookmarked"`
	Read            bool      `json:"read"`
	EngagementScore int       `json:"engagementScore,omitempty"`
}

// AggregateResult is the full output of one aggregation run. The slices are
// always non-nil: empty collections are a valid, non-error response shape.
type AggregateResult struct {
	CompanyNews []FeedItem `json:"companyNews"`
	GeneralNews []FeedItem `json:"generalNews"`
	Highlights  []FeedItem `json:"highlights"`
}

// Locale carries the geography and language parameters of a search call.
type Locale struct {
	GL string
	HL string
}

// RefreshJob asks the worker to rebuild the feed. Scope is either
// RefreshScopeAll or a company ID.
type RefreshJob struct {
	ID          string    `json:"id"`
	Scope       string    `json:"scope"`
	RequestedAt time.Time `json:"requested_at"`
}

// RefreshScopeAll rebuilds the whole portfolio feed.
const RefreshScopeAll = "all"
