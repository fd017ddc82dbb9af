package registry

import (
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	reg, err := Load("")
	if err != nil {
		t.Fatalf("did not expect an error: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatalf("expected companies in the embedded catalog")
	}
	company, ok := reg.ByID("1")
	if !ok {
		t.Fatalf("expected company with id 1")
	}
	if company.Name == "" {
		t.Fatalf("expected a company name")
	}
	if _, ok := reg.Refinement("Arc"); !ok {
		t.Fatalf("expected a relevance refinement for Arc")
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`
companies:
  - id: "1"
    name: Alpha
  - id: "1"
    name: Beta
`)
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected an error for duplicate ids")
	}
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	if _, err := Parse([]byte("companies: []")); err == nil {
		t.Fatalf("expected an error for an empty catalog")
	}
}

func TestCompanyLookups(t *testing.T) {
	raw := []byte(`
companies:
  - id: "1"
    name: Arc
    website: https://arcboats.com/
    search_terms: ["Arc boats"]
    industry: an electric boat manufacturer
    tags: [electric-vehicles, marine]
    relevance:
      any_of: [boat, marine]
      domains: [arcboats.com]
`)
	reg, err := Parse(raw)
	if err != nil {
		t.Fatalf("did not expect an error: %v", err)
	}
	company, ok := reg.ByID("1")
	if !ok {
		t.Fatalf("expected company with id 1")
	}
	if got := reg.IndustryContext(company); got != "an electric boat manufacturer" {
		t.Fatalf("unexpected industry context: %q", got)
	}
	if tags := reg.CompanyTags(company); len(tags) != 2 || tags[0] != "electric-vehicles" {
		t.Fatalf("unexpected company tags: %v", tags)
	}
	ref, ok := reg.Refinement("Arc")
	if !ok {
		t.Fatalf("expected a refinement for Arc")
	}
	if len(ref.AnyOf) != 2 || len(ref.Domains) != 1 {
		t.Fatalf("unexpected refinement: %+v", ref)
	}
}
