package classifier

import (
	"strings"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/registry"
)

const maxTags = 4

// fallbackTag is emitted when nothing else matches; tags are never empty.
const fallbackTag = "general"

// tagTable maps topical tags to their trigger keywords, scanned in order.
var tagTable = []struct {
	tag      string
	keywords []string
}{
	{"funding", []string{"funding", "investment", "raised", "series", "round", "capital", "valuation", "venture", "equity"}},
	{"product-launch", []string{"launch", "releases", "announces", "unveils", "introduces", "debuts", "rolls out"}},
	{"partnership", []string{"partnership", "collaboration", "teams up", "joins forces", "alliance", "agreement"}},
	{"acquisition", []string{"acquires", "acquisition", "buys", "purchases", "merger", "acquired by", "takeover"}},
	{"hiring", []string{"hiring", "joins", "appointed", "ceo", "cto", "hires", "executive", "leadership"}},
	{"growth", []string{"growth", "expansion", "scales", "increases", "growing", "expands", "revenue"}},
	{"ai", []string{"artificial intelligence", "ai", "machine learning", "ml", "automation", "neural", "algorithm"}},
	{"technology", []string{"technology", "tech", "innovation", "platform", "software", "digital"}},
	{"regulatory", []string{"regulation", "regulatory", "compliance", "fda", "approval", "licensed"}},
	{"clinical", []string{"clinical", "trial", "patient", "medical", "health", "treatment"}},
	{"sustainability", []string{"sustainable", "green", "carbon", "environment", "renewable", "clean"}},
	{"ipo", []string{"ipo", "public", "nasdaq", "stock", "shares", "listing"}},
	{"milestone", []string{"milestone", "achievement", "breakthrough", "success", "award"}},
}

// Classifier derives source and tags for feed items.
type Classifier struct {
	reg *registry.Registry
}

var _ domain.Tagger = (*Classifier)(nil)

// New creates the classifier.
func New(reg *registry.Registry) *Classifier {
	return &Classifier{reg: reg}
}

// Tags scans title and content for the generic tag table, unions in
// company-specific tags that appear in the text, and caps the result.
func (c *Classifier) Tags(article domain.Article, company domain.Company) []string {
	text := strings.ToLower(article.Title + " " + article.BestContent())

	var tags []string
	for _, entry := range tagTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}

	for _, tag := range c.reg.CompanyTags(company) {
		if tagMatchesText(tag, text) && !containsTag(tags, tag) {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return []string{fallbackTag}
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// tagMatchesText matches either the whole tag (hyphens read as spaces) or
// any of its components, so "electric-vehicles" fires on "electric boats".
func tagMatchesText(tag, text string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(tag), "-", " ")
	if strings.Contains(text, normalized) {
		return true
	}
	for _, part := range strings.Fields(normalized) {
		if strings.Contains(text, part) {
			return true
		}
	}
	return false
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
