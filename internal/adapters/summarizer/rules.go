package summarizer

import (
	"regexp"
	"strings"

	"portfolio-pulse/internal/domain"
)

// titleRules is the synthesis rule table: each entry pairs trigger words
// with a sentence template fed by best-effort regex extraction. A failed
// extraction degrades to a generic phrasing, never an error. The table is
// scanned in order and the first match wins.
var titleRules = []titleRule{
	{
		trigger: []string{"funding", "raise", "investment"},
		render:  renderFunding,
	},
	{
		trigger: []string{"partnership", "collaboration"},
		render:  renderPartnership,
	},
	{
		trigger: []string{"launch", "announces", "unveils"},
		render:  renderLaunch,
	},
	{
		trigger: []string{"acquisition", "acquires", "merger"},
		render:  renderAcquisition,
	},
}

type titleRule struct {
	trigger []string
	render  func(cleanTitle, lower string, company domain.Company, ctx string) string
}

func (r titleRule) matches(lower string) bool {
	for _, word := range r.trigger {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

var (
	amountPattern  = regexp.MustCompile(`(?i)\$[0-9,.]+\s*(?:million|billion|M|B)`)
	roundPattern   = regexp.MustCompile(`(?i)seed|series\s*[A-Z]|pre-seed|bridge`)
	purposePattern = regexp.MustCompile(`(?i)(?:to support|for)\s+([^.]+)`)
	partnerPattern = regexp.MustCompile(`(?:with|partnership with)\s+([A-Z][a-zA-Z\s]+?)(?:\s|$|,|\.)`)
	productPattern = regexp.MustCompile(`(?:launch|announces|unveils)\s+["']?([A-Z][a-zA-Z\s]+?)["']?(?:\s|$|,|\.)`)
	targetPattern  = regexp.MustCompile(`(?:acquires|acquisition of)\s+([A-Z][a-zA-Z\s]+?)(?:\s|$|,|\.)`)
)

func renderFunding(cleanTitle, lower string, company domain.Company, ctx string) string {
	amount := amountPattern.FindString(cleanTitle)
	round := roundPattern.FindString(cleanTitle)

	desc := sentencePrefix(company, ctx) + " has "
	switch {
	case amount != "" && round != "":
		desc += "raised " + amount + " in " + round + " funding"
	case amount != "":
		desc += "secured " + amount + " in funding"
	case round != "":
		desc += "completed " + round + " funding round"
	default:
		desc += "secured new funding"
	}

	if strings.Contains(lower, "to support") || strings.Contains(lower, "for") {
		if purpose := extractGroup(purposePattern, cleanTitle); purpose != "" {
			desc += " to " + strings.ToLower(purpose)
		}
	}
	return desc + "."
}

func renderPartnership(cleanTitle, lower string, company domain.Company, ctx string) string {
	partner := extractGroup(partnerPattern, cleanTitle)

	desc := sentencePrefix(company, ctx) + " has "
	switch {
	case strings.Contains(lower, "partnership") && partner != "":
		desc += "announced a strategic partnership with " + partner
	case strings.Contains(lower, "partnership"):
		desc += "formed a new strategic partnership"
	case strings.Contains(lower, "collaboration") && partner != "":
		desc += "entered into a collaboration with " + partner
	case strings.Contains(lower, "collaboration"):
		desc += "announced a new collaboration"
	default:
		desc += "established a new business relationship"
	}
	return desc + "."
}

func renderLaunch(cleanTitle, lower string, company domain.Company, ctx string) string {
	product := extractGroup(productPattern, cleanTitle)

	desc := sentencePrefix(company, ctx) + " has "
	switch {
	case strings.Contains(lower, "launch") && product != "":
		desc += "launched " + product
	case strings.Contains(lower, "launch"):
		desc += "launched a new offering"
	case strings.Contains(lower, "announces") && product != "":
		desc += "announced " + product
	case strings.Contains(lower, "announces"):
		desc += "made a significant announcement"
	case strings.Contains(lower, "unveils") && product != "":
		desc += "unveiled " + product
	case strings.Contains(lower, "unveils"):
		desc += "unveiled new developments"
	default:
		desc += "introduced new capabilities"
	}
	return desc + "."
}

func renderAcquisition(cleanTitle, lower string, company domain.Company, ctx string) string {
	target := extractGroup(targetPattern, cleanTitle)

	desc := sentencePrefix(company, ctx) + " has "
	switch {
	case (strings.Contains(lower, "acquires") || strings.Contains(lower, "acquisition")) && target != "":
		desc += "acquired " + target
	case strings.Contains(lower, "acquires") || strings.Contains(lower, "acquisition"):
		desc += "completed an acquisition"
	case strings.Contains(lower, "merger") && target != "":
		desc += "announced a merger with " + target
	case strings.Contains(lower, "merger"):
		desc += "announced a strategic merger"
	default:
		desc += "engaged in corporate development activity"
	}
	return desc + "."
}

func extractGroup(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}
