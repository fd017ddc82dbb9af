package classifier

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
    tags: [electric-vehicles, marine]
  - id: "2"
    name: Acme
`)
	reg, err := registry.Parse(raw)
	if err != nil {
		t.Fatalf("did not expect an error: %v", err)
	}
	return reg
}

func TestSourceClassification(t *testing.T) {
	c := New(testRegistry(t))
	cases := []struct {
		name string
		want domain.Source
	}{
		{"TechCrunch", domain.SourceNews},
		{"Bloomberg Technology", domain.SourceNews},
		{"LinkedIn News", domain.SourceLinkedIn},
		{"X.com", domain.SourceTwitter},
		{"Company Blog", domain.SourceBlog},
		{"Medium", domain.SourceBlog},
		{"Lakeville Gazette", domain.SourceOther},
	}
	for _, tc := range cases {
		if got := c.Source(tc.name); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestTagsFromKeywordTable(t *testing.T) {
	c := New(testRegistry(t))
	company, _ := testRegistry(t).ByID("2")
	article := domain.Article{Title: "Acme secures Series B funding round"}
	tags := c.Tags(article, company)
	if len(tags) != 1 || tags[0] != "funding" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}

func TestTagsFallBackToGeneral(t *testing.T) {
	c := New(testRegistry(t))
	company, _ := testRegistry(t).ByID("2")
	article := domain.Article{Title: "Acme in the news"}
	tags := c.Tags(article, company)
	if len(tags) != 1 || tags[0] != "general" {
		t.Fatalf("expected the general fallback, got %v", tags)
	}
}

func TestTagsIncludeCompanyTagComponents(t *testing.T) {
	reg := testRegistry(t)
	c := New(reg)
	company, _ := reg.ByID("1")
	article := domain.Article{Title: "Arc unveils its next electric boats"}
	tags := c.Tags(article, company)
	if !contains(tags, "product-launch") {
		t.Fatalf("expected product-launch tag, got %v", tags)
	}
	if !contains(tags, "electric-vehicles") {
		t.Fatalf("expected electric-vehicles via component match, got %v", tags)
	}
}

func TestTagsAreCapped(t *testing.T) {
	c := New(testRegistry(t))
	company, _ := testRegistry(t).ByID("2")
	article := domain.Article{
		Title:   "Acme raises funding, launches AI platform, announces partnership and acquisition",
		Snippet: "growth and hiring follow the expansion",
	}
	tags := c.Tags(article, company)
	if len(tags) != 4 {
		t.Fatalf("expected 4 tags, got %v", tags)
	}
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
