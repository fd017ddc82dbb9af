// Package relevance implements the textual relevance test that separates
// genuine portfolio-company coverage from articles that merely collide with
// a company name ("pain relief", "arc welding", "copper price").
package relevance

import (
	"strings"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/registry"
)

// denyList holds phrases that mark an article as a false positive. Several
// portfolio names are common-language words, so a bare name match is not
// enough.
var denyList = []string{
	// medical/research boilerplate
	"pain relief", "inflammatory", "medication", "clinical trial", "medical research",
	"pharmaceutical", "drug development", "therapy", "treatment", "patient",
	// generic relief phrases
	"the relief", "stress relief", "debt relief act", "disaster relief",
	"tax relief", "mortgage relief", "student loan relief",
	// disaster language
	"relief efforts", "hurricane relief", "flood relief", "emergency relief",
	// metal/commodity terms
	"copper wire", "copper price", "copper mining", "metal prices", "arc welding",
	"electrical arc", "arc flash", "copper sulfate",
	// awareness campaigns, not the company
	"mental health awareness", "mental health month", "mental health day",
}

// allowList holds business-context signal words; at least one must appear.
var allowList = []string{
	"startup", "company", "ceo", "founder", "funding", "investment", "venture capital",
	"series a", "series b", "seed round", "valuation", "partnership", "acquisition",
	"launches", "announces", "platform", "app", "technology", "raises", "secures",
	"appoints", "hires", "expands", "grows", "revenue", "customers", "users",
}

// Filter applies the generic relevance test plus per-company refinement
// predicates from the registry.
type Filter struct {
	reg *registry.Registry
}

var _ domain.RelevanceFilter = (*Filter)(nil)

// New creates the filter.
func New(reg *registry.Registry) *Filter {
	return &Filter{reg: reg}
}

// Relevant reports whether the article genuinely concerns the company.
func (f *Filter) Relevant(article domain.Article, company domain.Company) bool {
	text := strings.ToLower(article.Title) + " " + strings.ToLower(article.Snippet)

	if !strings.Contains(text, strings.ToLower(company.Name)) {
		return false
	}

	for _, phrase := range denyList {
		if strings.Contains(text, phrase) {
			return false
		}
	}

	hasSignal := false
	for _, signal := range allowList {
		if strings.Contains(text, signal) {
			hasSignal = true
			break
		}
	}
	if !hasSignal {
		return false
	}

	// Ambiguous names carry a stricter predicate on top of the generic test.
	if ref, ok := f.reg.Refinement(company.Name); ok {
		return refinementMatches(ref, text, article.Link)
	}
	return true
}

func refinementMatches(ref registry.Refinement, text, link string) bool {
	for _, keyword := range ref.AnyOf {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	for _, domainHint := range ref.Domains {
		if strings.Contains(link, domainHint) {
			return true
		}
	}
	return false
}
