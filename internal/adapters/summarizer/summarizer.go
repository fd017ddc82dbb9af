// Package summarizer turns raw search results into display-ready titles and
// summaries. When the provider supplies descriptive text it is cleaned and
// enhanced; when it does not, a summary is synthesized from the title alone
// through an enumerable rule table (see rules.go).
package summarizer

import (
	"regexp"
	"strings"
	"unicode"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/registry"
)

// shortSummaryLen marks provider snippets that were likely truncated.
const shortSummaryLen = 50

var (
	whitespaceRe     = regexp.MustCompile(`\s+`)
	leadingDotsRe    = regexp.MustCompile(`^\.+\s*`)
	trailingDotsRe   = regexp.MustCompile(`\s*\.+$`)
	edgeQuotesRe     = regexp.MustCompile(`^["“”]+|["“”]+$`)
	leadingDashRe    = regexp.MustCompile(`^\s*[-–—]\s*`)
	trailingDashRe   = regexp.MustCompile(`\s*[-–—]\s*$`)
	titleLeadDashRe  = regexp.MustCompile(`^-\s*`)
	titleTailDashRe  = regexp.MustCompile(`\s*-\s*$`)
	cleanTitleLeadRe = regexp.MustCompile(`^[-:\s]+`)
)

// Summarizer builds titles and summaries with industry context from the
// company registry.
type Summarizer struct {
	reg *registry.Registry
}

var _ domain.Summarizer = (*Summarizer)(nil)

// New creates the summarizer.
func New(reg *registry.Registry) *Summarizer {
	return &Summarizer{reg: reg}
}

// Title cleans up the provider title and substitutes a matched auxiliary
// search term with the canonical company name.
func (s *Summarizer) Title(article domain.Article, company domain.Company) string {
	title := strings.TrimSpace(whitespaceRe.ReplaceAllString(article.Title, " "))
	title = titleLeadDashRe.ReplaceAllString(title, "")
	title = titleTailDashRe.ReplaceAllString(title, "")

	if !strings.Contains(title, company.Name) {
		for _, term := range company.SearchTerms {
			if strings.Contains(strings.ToLower(title), strings.ToLower(term)) {
				termRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
				title = termRe.ReplaceAllString(title, company.Name)
				break
			}
		}
	}
	return title
}

// Summary produces the display summary: enhanced provider content when
// available, otherwise a sentence synthesized from the title.
func (s *Summarizer) Summary(article domain.Article, company domain.Company) string {
	content := article.BestContent()
	if content != "" {
		return s.enhance(article.Title, content, company)
	}
	return s.synthesizeFromTitle(article.Title, company)
}

func (s *Summarizer) enhance(title, content string, company domain.Company) string {
	sum := strings.TrimSpace(whitespaceRe.ReplaceAllString(content, " "))
	sum = leadingDotsRe.ReplaceAllString(sum, "")
	sum = trailingDotsRe.ReplaceAllString(sum, "")
	sum = edgeQuotesRe.ReplaceAllString(sum, "")
	sum = leadingDashRe.ReplaceAllString(sum, "")
	sum = trailingDashRe.ReplaceAllString(sum, "")

	nameRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(company.Name))

	// Very short snippets were likely cut off by the provider; pad them with
	// the title minus the company name.
	if len(sum) < shortSummaryLen {
		titleRemainder := strings.TrimSpace(nameRe.ReplaceAllString(title, ""))
		if len(titleRemainder) > len(sum) {
			sum = strings.TrimSpace(sum + " " + titleRemainder)
		}
	}

	// Keep only the first literal company mention.
	boundedNameRe := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(company.Name) + `\b`)
	if len(boundedNameRe.FindAllStringIndex(sum, -1)) > 1 {
		first := true
		sum = boundedNameRe.ReplaceAllStringFunc(sum, func(match string) string {
			if first {
				first = false
				return match
			}
			return "the company"
		})
	}

	if !strings.Contains(strings.ToLower(sum), strings.ToLower(company.Name)) && len(sum) < 100 {
		if ctx := s.reg.IndustryContext(company); ctx != "" {
			sum = company.Name + ", " + ctx + ", " + strings.ToLower(sum)
		}
	}

	return finishSentence(sum)
}

func (s *Summarizer) synthesizeFromTitle(title string, company domain.Company) string {
	nameRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(company.Name))
	cleanTitle := strings.TrimSpace(nameRe.ReplaceAllString(title, ""))
	cleanTitle = cleanTitleLeadRe.ReplaceAllString(cleanTitle, "")
	lower := strings.ToLower(cleanTitle)
	ctx := s.reg.IndustryContext(company)

	for _, r := range titleRules {
		if r.matches(lower) {
			return r.render(cleanTitle, lower, company, ctx)
		}
	}
	return sentencePrefix(company, ctx) + " " + lower + "."
}

// sentencePrefix renders "<Name>, <industry context>," or just the name.
func sentencePrefix(company domain.Company, ctx string) string {
	if ctx == "" {
		return company.Name
	}
	return company.Name + ", " + ctx + ","
}

func finishSentence(sum string) string {
	if sum == "" {
		return sum
	}
	if !strings.HasSuffix(sum, ".") && !strings.HasSuffix(sum, "!") && !strings.HasSuffix(sum, "?") {
		sum += "."
	}
	runes := []rune(sum)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
