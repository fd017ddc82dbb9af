package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"portfolio-pulse/internal/adapters/dates"
	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/infra/metrics"
	"portfolio-pulse/internal/registry"
)

const queryDelay = 100 * time.Millisecond

// generalTopics are the market-wide searches that fill the general news rail.
var generalTopics = []string{"startup funding", "venture capital", "startup acquisition"}

// generalCompany is the placeholder owner attached to general news items.
var generalCompany = domain.Company{ID: "general", Name: "Industry News", Logo: "/placeholder.svg"}

// Options bound the per-stage result counts.
type Options struct {
	Locale             domain.Locale
	PerCompanyLimit    int
	GeneralSearchLimit int
	CompanyNewsLimit   int
	GeneralNewsLimit   int
	HighlightsLimit    int
	HighlightThreshold int
}

// DefaultOptions returns the standard feed limits.
func DefaultOptions() Options {
	return Options{
		Locale:             domain.Locale{GL: "us", HL: "en"},
		PerCompanyLimit:    10,
		GeneralSearchLimit: 15,
		CompanyNewsLimit:   50,
		GeneralNewsLimit:   20,
		HighlightsLimit:    5,
		HighlightThreshold: 70,
	}
}

// Service implements the feed aggregation pipeline: it fans out provider
// searches per company, filters and synthesizes the results into feed items
// and assembles the combined feed.
type Service struct {
	provider   domain.NewsProvider
	filter     domain.RelevanceFilter
	summarizer domain.Summarizer
	tagger     domain.Tagger
	scorer     domain.Scorer
	ranker     domain.Ranker
	reg        *registry.Registry
	opts       Options
	log        zerolog.Logger

	now   func() time.Time
	delay time.Duration
}

var _ domain.FeedService = (*Service)(nil)

// NewService creates the feed service.
func NewService(provider domain.NewsProvider, filter domain.RelevanceFilter, summarizer domain.Summarizer, tagger domain.Tagger, scorer domain.Scorer, ranker domain.Ranker, reg *registry.Registry, opts Options, logger zerolog.Logger) *Service {
	return &Service{
		provider:   provider,
		filter:     filter,
		summarizer: summarizer,
		tagger:     tagger,
		scorer:     scorer,
		ranker:     ranker,
		reg:        reg,
		opts:       opts,
		log:        logger,
		now:        time.Now,
		delay:      queryDelay,
	}
}

// Aggregate builds the full feed across every catalog company plus the
// general market searches. Individual company failures degrade to an empty
// contribution; only a panic in the assembly itself surfaces as an error,
// and even then the result collections stay non-nil.
func (s *Service) Aggregate(ctx context.Context) (result domain.AggregateResult, err error) {
	start := time.Now()
	defer func() {
		metrics.AggregationBuildSeconds.Observe(time.Since(start).Seconds())
	}()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("feed: aggregation panicked")
			result = emptyResult()
			err = fmt.Errorf("aggregate feed: %v", r)
		}
	}()

	companies := s.reg.Companies()
	perCompany := make([][]domain.FeedItem, len(companies))
	var general []domain.FeedItem

	var wg sync.WaitGroup
	for i := range companies {
		wg.Add(1)
		go func(i int, company domain.Company) {
			defer wg.Done()
			items, err := s.CompanyNews(ctx, company)
			if err != nil {
				s.log.Warn().Err(err).Str("company", company.Name).Msg("feed: company pipeline failed")
				return
			}
			perCompany[i] = items
		}(i, companies[i])
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		general = s.generalNews(ctx)
	}()
	wg.Wait()

	companyNews := make([]domain.FeedItem, 0)
	for _, items := range perCompany {
		companyNews = append(companyNews, items...)
	}
	companyNews = s.ranker.Deduplicate(companyNews)
	s.ranker.Sort(companyNews)
	companyNews = capped(companyNews, s.opts.CompanyNewsLimit)

	generalNews := s.ranker.Deduplicate(general)
	s.ranker.Sort(generalNews)
	generalNews = capped(generalNews, s.opts.GeneralNewsLimit)

	all := make([]domain.FeedItem, 0, len(companyNews)+len(generalNews))
	all = append(all, companyNews...)
	all = append(all, generalNews...)
	highlights := s.ranker.Highlights(all, s.opts.HighlightThreshold, s.opts.HighlightsLimit)

	return domain.AggregateResult{
		CompanyNews: companyNews,
		GeneralNews: generalNews,
		Highlights:  highlights,
	}, nil
}

// CompanyNews runs the search queries for one company sequentially and
// returns the synthesized feed items. A failing query contributes nothing;
// the remaining queries still run.
func (s *Service) CompanyNews(ctx context.Context, company domain.Company) ([]domain.FeedItem, error) {
	queries := BuildQueries(company)
	now := s.now()
	items := make([]domain.FeedItem, 0, s.opts.PerCompanyLimit)
	seq := 0

	for qi, query := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		articles, err := s.provider.SearchNews(ctx, query, s.opts.Locale)
		if err != nil {
			metrics.SearchErrors.Inc()
			s.log.Warn().Err(err).Str("company", company.Name).Str("query", query).Msg("feed: search query failed")
		} else {
			for _, article := range articles {
				if !s.filter.Relevant(article, company) {
					continue
				}
				items = append(items, s.buildItem(article, company, seq, now))
				seq++
			}
		}
		if qi < len(queries)-1 {
			// pace requests to stay under the provider rate limit
			time.Sleep(s.delay)
		}
	}

	items = s.ranker.Deduplicate(items)
	items = capped(items, s.opts.PerCompanyLimit)
	metrics.IncFeedItems(company.ID, len(items))
	return items, nil
}

// generalNews runs the market-wide topic searches. Topic queries are not
// tied to a company name, so the relevance filter does not apply.
func (s *Service) generalNews(ctx context.Context) []domain.FeedItem {
	now := s.now()
	items := make([]domain.FeedItem, 0, s.opts.GeneralSearchLimit)
	seq := 0

	for ti, topic := range generalTopics {
		if ctx.Err() != nil {
			break
		}
		articles, err := s.provider.SearchNews(ctx, topic, s.opts.Locale)
		if err != nil {
			metrics.SearchErrors.Inc()
			s.log.Warn().Err(err).Str("topic", topic).Msg("feed: general search failed")
		} else {
			for _, article := range articles {
				items = append(items, s.buildItem(article, generalCompany, seq, now))
				seq++
			}
		}
		if ti < len(generalTopics)-1 {
			time.Sleep(s.delay)
		}
	}

	items = s.ranker.Deduplicate(items)
	return capped(items, s.opts.GeneralSearchLimit)
}

// buildItem turns a raw article into a display-ready feed item.
func (s *Service) buildItem(article domain.Article, company domain.Company, seq int, now time.Time) domain.FeedItem {
	publishedAt := dates.Resolve(article.Date, now)
	return domain.FeedItem{
		ID:              fmt.Sprintf("%s-%d-%d", company.ID, now.UnixMilli(), seq),
		Company:         company,
		Source:          s.tagger.Source(article.SourceName),
		Title:           s.summarizer.Title(article, company),
		Summary:         s.summarizer.Summary(article, company),
		Timestamp:       publishedAt,
		OriginalURL:     article.Link,
		Tags:            s.tagger.Tags(article, company),
		EngagementScore: s.scorer.Score(article, publishedAt, now),
	}
}

func capped(items []domain.FeedItem, limit int) []domain.FeedItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func emptyResult() domain.AggregateResult {
	return domain.AggregateResult{
		CompanyNews: []domain.FeedItem{},
		GeneralNews: []domain.FeedItem{},
		Highlights:  []domain.FeedItem{},
	}
}
