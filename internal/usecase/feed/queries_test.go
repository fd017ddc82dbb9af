package feed

import (
	"strings"
	"testing"

	"portfolio-pulse/internal/domain"
)

func TestBuildQueriesNameOnly(t *testing.T) {
	queries := BuildQueries(domain.Company{Name: "Brellium"})
	if len(queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(queries))
	}
	if !strings.Contains(queries[0], `"Brellium"`) || !strings.Contains(queries[0], "funding") {
		t.Fatalf("unexpected base query: %q", queries[0])
	}
}

func TestBuildQueriesIncludesBareDomain(t *testing.T) {
	company := domain.Company{Name: "Arc", Website: "https://arcboats.com/en/home"}
	queries := BuildQueries(company)
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}
	if queries[1] != `"Arc" AND "arcboats.com"` {
		t.Fatalf("unexpected website query: %q", queries[1])
	}
}

func TestBuildQueriesUsesFirstSearchTerm(t *testing.T) {
	company := domain.Company{
		Name:        "Arc",
		Website:     "https://arcboats.com/",
		SearchTerms: []string{"Arc boats", "Arc One"},
	}
	queries := BuildQueries(company)
	if len(queries) != 3 {
		t.Fatalf("expected 3 queries, got %d", len(queries))
	}
	if !strings.Contains(queries[2], `"Arc boats"`) {
		t.Fatalf("expected the first search term, got %q", queries[2])
	}
	if strings.Contains(queries[2], "Arc One") {
		t.Fatalf("did not expect the second search term in %q", queries[2])
	}
}
