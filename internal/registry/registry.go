// Package registry holds the fixed catalog of tracked portfolio companies
// together with the per-company lookup tables used by the news pipeline.
// The catalog is data, not code: it ships as an embedded YAML file and can
// be overridden with an external file at startup.
package registry

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"portfolio-pulse/internal/domain"
)

//go:embed companies.yaml
var defaultCatalog []byte

// Refinement is an additional relevance predicate for companies whose names
// collide with common-language terms. An article passes when its text
// contains any of AnyOf or its link contains any of Domains.
type Refinement struct {
	AnyOf   []string `yaml:"any_of"`
	Domains []string `yaml:"domains"`
}

type companyRecord struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Logo        string      `yaml:"logo"`
	Website     string      `yaml:"website"`
	SearchTerms []string    `yaml:"search_terms"`
	Industry    string      `yaml:"industry"`
	Tags        []string    `yaml:"tags"`
	Relevance   *Refinement `yaml:"relevance"`
}

type catalogFile struct {
	Companies []companyRecord `yaml:"companies"`
}

// Registry is the immutable set of tracked companies.
type Registry struct {
	companies   []domain.Company
	byID        map[string]domain.Company
	industry    map[string]string
	tags        map[string][]string
	refinements map[string]Refinement
}

// Load builds the registry from the embedded catalog, or from the file at
// path when it is non-empty.
func Load(path string) (*Registry, error) {
	raw := defaultCatalog
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog.
func Parse(raw []byte) (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Companies) == 0 {
		return nil, fmt.Errorf("catalog has no companies")
	}

	reg := &Registry{
		byID:        make(map[string]domain.Company, len(file.Companies)),
		industry:    make(map[string]string, len(file.Companies)),
		tags:        make(map[string][]string, len(file.Companies)),
		refinements: make(map[string]Refinement),
	}
	seenNames := make(map[string]struct{}, len(file.Companies))
	for _, rec := range file.Companies {
		if rec.ID == "" || rec.Name == "" {
			return nil, fmt.Errorf("catalog entry %q/%q: id and name are required", rec.ID, rec.Name)
		}
		if _, ok := reg.byID[rec.ID]; ok {
			return nil, fmt.Errorf("duplicate company id %q", rec.ID)
		}
		if _, ok := seenNames[rec.Name]; ok {
			return nil, fmt.Errorf("duplicate company name %q", rec.Name)
		}
		seenNames[rec.Name] = struct{}{}

		company := domain.Company{
			ID:          rec.ID,
			Name:        rec.Name,
			Logo:        rec.Logo,
			Website:     rec.Website,
			SearchTerms: rec.SearchTerms,
		}
		reg.companies = append(reg.companies, company)
		reg.byID[rec.ID] = company
		if rec.Industry != "" {
			reg.industry[rec.Name] = rec.Industry
		}
		if len(rec.Tags) > 0 {
			reg.tags[rec.Name] = rec.Tags
		}
		if rec.Relevance != nil {
			reg.refinements[rec.Name] = *rec.Relevance
		}
	}
	return reg, nil
}

// Companies returns the tracked companies in catalog order.
func (r *Registry) Companies() []domain.Company {
	out := make([]domain.Company, len(r.companies))
	copy(out, r.companies)
	return out
}

// ByID resolves a company by its stable identifier.
func (r *Registry) ByID(id string) (domain.Company, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// IndustryContext returns the descriptive fragment for a company
// ("an electric boat manufacturer"), or "" when unknown.
func (r *Registry) IndustryContext(company domain.Company) string {
	return r.industry[company.Name]
}

// CompanyTags returns the company-specific topical tags, or nil.
func (r *Registry) CompanyTags(company domain.Company) []string {
	return r.tags[company.Name]
}

// Refinement returns the extra relevance predicate for ambiguous company
// names, if one is configured.
func (r *Registry) Refinement(name string) (Refinement, bool) {
	ref, ok := r.refinements[name]
	return ref, ok
}

// Len reports the number of tracked companies.
func (r *Registry) Len() int {
	return len(r.companies)
}
