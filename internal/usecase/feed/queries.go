package feed

import (
	"fmt"
	"strings"

	"portfolio-pulse/internal/domain"
)

const maxQueriesPerCompany = 3

// BuildQueries derives the provider search queries for a company. The first
// query always targets the company name with startup context; the website
// and the first search term each add one narrower query when present.
func BuildQueries(company domain.Company) []string {
	queries := []string{
		fmt.Sprintf(`"%s" AND (startup OR company) AND (CEO OR founder OR funding OR raised OR investment OR partnership)`, company.Name),
	}

	if host := bareDomain(company.Website); host != "" {
		queries = append(queries, fmt.Sprintf(`"%s" AND "%s"`, company.Name, host))
	}

	if len(company.SearchTerms) > 0 {
		if term := strings.TrimSpace(company.SearchTerms[0]); term != "" {
			queries = append(queries, fmt.Sprintf(`"%s" AND "%s" AND (startup OR company OR business)`, term, company.Name))
		}
	}

	if len(queries) > maxQueriesPerCompany {
		queries = queries[:maxQueriesPerCompany]
	}
	return queries
}

// bareDomain strips the scheme and path from a website URL, leaving the
// host for use as a search keyword.
func bareDomain(website string) string {
	host := strings.TrimSpace(website)
	if host == "" {
		return ""
	}
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}
