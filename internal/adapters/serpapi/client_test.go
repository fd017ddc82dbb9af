package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"portfolio-pulse/internal/domain"
)

func TestSearchNewsMapsResults(t *testing.T) {
	var gotQuery, gotEngine string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotEngine = r.URL.Query().Get("engine")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"search_metadata": {"status": "Success"},
			"news_results": [{
				"position": 1,
				"title": "Arc raises funding",
				"snippet": "short snippet",
				"source": {"name": "TechCrunch", "authors": ["Jane Doe"]},
				"link": "https://techcrunch.com/arc",
				"date": "2 hours ago"
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, time.Second, 10, zerolog.Nop())
	articles, err := c.SearchNews(context.Background(), `"Arc" AND (startup OR company)`, domain.Locale{GL: "us", HL: "en"})
	if err != nil {
		t.Fatalf("did not expect an error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if gotEngine != "google_news" {
		t.Fatalf("expected the google_news engine, got %q", gotEngine)
	}
	if gotQuery != `"Arc" AND (startup OR company)` {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	a := articles[0]
	if a.Title != "Arc raises funding" || a.SourceName != "TechCrunch" || a.Date != "2 hours ago" {
		t.Fatalf("unexpected mapping: %+v", a)
	}
	if len(a.Authors) != 1 || a.Authors[0] != "Jane Doe" {
		t.Fatalf("unexpected authors: %v", a.Authors)
	}
}

func TestSearchNewsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"search_metadata": {"status": "Error"}, "news_results": []}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, time.Second, 0, zerolog.Nop())
	articles, err := c.SearchNews(context.Background(), "query", domain.Locale{})
	if err != nil {
		t.Fatalf("a non-success status is not an error: %v", err)
	}
	if articles != nil {
		t.Fatalf("expected no articles, got %v", articles)
	}
}

func TestSearchNewsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, time.Second, 0, zerolog.Nop())
	if _, err := c.SearchNews(context.Background(), "query", domain.Locale{}); err == nil {
		t.Fatalf("expected an error for a non-2xx response")
	}
}
