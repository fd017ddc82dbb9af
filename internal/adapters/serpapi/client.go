// Package serpapi is the gateway to the SerpApi Google News engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/infra/metrics"
)

const defaultBaseURL = "https://serpapi.com/search.json"

const statusSuccess = "Success"

// Client issues news searches against SerpApi.
type Client struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	resultHint int
	log        zerolog.Logger
}

var _ domain.NewsProvider = (*Client)(nil)

// NewClient creates the gateway. resultHint bounds the per-query result
// count the provider is asked for (0 leaves it to the provider default).
func NewClient(apiKey, baseURL string, timeout time.Duration, resultHint int, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http:       &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		resultHint: resultHint,
		log:        logger,
	}
}

type searchResponse struct {
	SearchMetadata struct {
		Status string `json:"status"`
	} `json:"search_metadata"`
	NewsResults []newsResult `json:"news_results"`
}

type newsResult struct {
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Source      struct {
		Name    string   `json:"name"`
		Icon    string   `json:"icon"`
		Authors []string `json:"authors"`
	} `json:"source"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
}

// SearchNews runs one provider query and returns the raw candidates. A
// non-2xx status or malformed payload is an error; the caller treats it as
// "no results for this query".
func (c *Client) SearchNews(ctx context.Context, query string, loc domain.Locale) ([]domain.Article, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	params := endpoint.Query()
	params.Set("engine", "google_news")
	params.Set("q", query)
	params.Set("gl", loc.GL)
	params.Set("hl", loc.HL)
	params.Set("api_key", c.apiKey)
	if c.resultHint > 0 {
		params.Set("num", strconv.Itoa(c.resultHint))
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ObserveNetworkRequest("serpapi", "search", "google_news", start, err)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if payload.SearchMetadata.Status != statusSuccess {
		c.log.Debug().Str("query", query).Str("status", payload.SearchMetadata.Status).Msg("serpapi: non-success status")
		return nil, nil
	}

	articles := make([]domain.Article, 0, len(payload.NewsResults))
	for _, r := range payload.NewsResults {
		articles = append(articles, domain.Article{
			Position:    r.Position,
			Title:       r.Title,
			Snippet:     r.Snippet,
			Description: r.Description,
			Summary:     r.Summary,
			Content:     r.Content,
			Excerpt:     r.Excerpt,
			SourceName:  r.Source.Name,
			SourceIcon:  r.Source.Icon,
			Authors:     r.Source.Authors,
			Link:        r.Link,
			Thumbnail:   r.Thumbnail,
			Date:        r.Date,
		})
	}
	return articles, nil
}
