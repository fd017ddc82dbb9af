package relevance

import (
	"testing"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	raw := []byte(`
companies:
  - id: "1"
    name: Arc
    relevance:
      any_of: [boat, marine]
      domains: [arcboats.com]
  - id: "2"
    name: Relief
    relevance:
      any_of: [app, debt management]
      domains: [relief.app]
  - id: "3"
    name: Brellium
`)
	reg, err := registry.Parse(raw)
	if err != nil {
		t.Fatalf("did not expect an error: %v", err)
	}
	return reg
}

func TestRelevantRequiresCompanyName(t *testing.T) {
	f := New(testRegistry(t))
	article := domain.Article{Title: "Startup funding hits a record", Snippet: "venture capital is back"}
	if f.Relevant(article, domain.Company{Name: "Brellium"}) {
		t.Fatalf("expected article without the company name to be rejected")
	}
}

func TestRelevantRejectsDenyListPhrases(t *testing.T) {
	f := New(testRegistry(t))
	article := domain.Article{
		Title:   "New study on pain relief",
		Snippet: "the relief startup community reacts to clinical research",
	}
	if f.Relevant(article, domain.Company{Name: "Relief"}) {
		t.Fatalf("expected deny-list phrase to reject the article")
	}
}

func TestRelevantRequiresBusinessSignal(t *testing.T) {
	f := New(testRegistry(t))
	article := domain.Article{Title: "Brellium spotted downtown", Snippet: "a quiet afternoon"}
	if f.Relevant(article, domain.Company{Name: "Brellium"}) {
		t.Fatalf("expected article without business signal to be rejected")
	}
}

func TestRelevantAcceptsBusinessCoverage(t *testing.T) {
	f := New(testRegistry(t))
	article := domain.Article{
		Title:   "Brellium raises new round",
		Snippet: "the startup expands its platform",
	}
	if !f.Relevant(article, domain.Company{Name: "Brellium"}) {
		t.Fatalf("expected business coverage to pass")
	}
}

func TestRefinementKeywordRequired(t *testing.T) {
	f := New(testRegistry(t))
	company := domain.Company{Name: "Relief"}

	offTopic := domain.Article{
		Title:   "Relief announces expansion",
		Snippet: "the company grows revenue",
	}
	if f.Relevant(offTopic, company) {
		t.Fatalf("expected ambiguous name without refinement keyword to be rejected")
	}

	onTopic := domain.Article{
		Title:   "Relief announces expansion",
		Snippet: "the debt management startup grows revenue",
	}
	if !f.Relevant(onTopic, company) {
		t.Fatalf("expected refinement keyword to accept the article")
	}
}

func TestRefinementDomainMatchesLink(t *testing.T) {
	f := New(testRegistry(t))
	article := domain.Article{
		Title:   "Arc secures funding",
		Snippet: "the startup announces growth",
		Link:    "https://news.example.com/arcboats.com-feature",
	}
	if !f.Relevant(article, domain.Company{Name: "Arc"}) {
		t.Fatalf("expected link domain hint to accept the article")
	}
}
