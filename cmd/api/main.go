package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"portfolio-pulse/internal/adapters/classifier"
	"portfolio-pulse/internal/adapters/ranker"
	"portfolio-pulse/internal/adapters/relevance"
	"portfolio-pulse/internal/adapters/serpapi"
	"portfolio-pulse/internal/adapters/statestore"
	"portfolio-pulse/internal/adapters/summarizer"
	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/infra/cache"
	"portfolio-pulse/internal/infra/config"
	httpinfra "portfolio-pulse/internal/infra/http"
	infralog "portfolio-pulse/internal/infra/log"
	"portfolio-pulse/internal/infra/metrics"
	"portfolio-pulse/internal/infra/queue"
	"portfolio-pulse/internal/registry"
	"portfolio-pulse/internal/usecase/feed"
)

const feedCacheKey = "feed:latest"

func main() {
	cfg := config.Load()
	logger := infralog.NewLogger(cfg.AppEnv)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, err := registry.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("api: failed to load company catalog")
	}
	logger.Info().Int("companies", reg.Len()).Msg("api: catalog loaded")

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	var feedCache domain.Cache
	if redisClient != nil {
		feedCache = cache.NewRedis(redisClient)
	} else {
		feedCache = cache.NewMemory()
	}

	var refreshQueue domain.RefreshQueue
	switch {
	case cfg.AMQPURL != "":
		rabbit, err := queue.NewRabbitRefreshQueue(cfg.AMQPURL, cfg.Queues.Refresh)
		if err != nil {
			logger.Fatal().Err(err).Msg("api: failed to connect refresh queue")
		}
		defer rabbit.Close()
		refreshQueue = rabbit
	case redisClient != nil:
		refreshQueue = queue.NewRedisRefreshQueue(redisClient, cfg.Queues.Refresh)
	default:
		logger.Warn().Msg("api: no broker configured, refresh endpoint disabled")
	}

	provider := serpapi.NewClient(cfg.SerpAPI.Key, cfg.SerpAPI.BaseURL, cfg.SerpAPI.Timeout, cfg.SerpAPI.ResultHint, logger.With().Str("component", "serpapi").Logger())
	feedService := feed.NewService(
		provider,
		relevance.New(reg),
		summarizer.New(reg),
		classifier.New(reg),
		ranker.NewScorer(),
		ranker.NewRanker(),
		reg,
		feedOptions(cfg),
		logger.With().Str("component", "feed").Logger(),
	)
	flags := statestore.NewMemory()

	server := httpinfra.NewServer(logger.With().Str("component", "http").Logger())
	r := server.Router

	r.Get("/api/v1/news", func(w http.ResponseWriter, req *http.Request) {
		if cfg.SerpAPI.Key == "" {
			writeJSON(w, http.StatusOK, apiResponse{
				Success: true,
				Data:    emptyFeed(),
				Message: "news provider is not configured",
			})
			return
		}

		if data, err := feedCache.Get(req.Context(), feedCacheKey); err == nil {
			var cached domain.AggregateResult
			if decodeErr := json.Unmarshal(data, &cached); decodeErr != nil {
				logger.Warn().Err(decodeErr).Msg("api: discarding malformed cached feed")
			} else {
				writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: applyFlags(flags, cached)})
				return
			}
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("api: feed cache read failed")
		}

		result, err := feedService.Aggregate(req.Context())
		if err != nil {
			logger.Error().Err(err).Msg("api: feed aggregation failed")
			writeJSON(w, http.StatusOK, apiResponse{Success: false, Data: emptyFeed()})
			return
		}
		if data, err := json.Marshal(result); err == nil {
			if err := feedCache.Set(req.Context(), feedCacheKey, data, cfg.Feed.CacheTTL); err != nil {
				logger.Warn().Err(err).Msg("api: feed cache write failed")
			}
		}
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: applyFlags(flags, result)})
	})

	r.Post("/api/v1/news/refresh", func(w http.ResponseWriter, req *http.Request) {
		if refreshQueue == nil {
			writeError(w, http.StatusServiceUnavailable, "refresh queue is not configured")
			return
		}
		job := domain.RefreshJob{
			ID:          uuid.NewString(),
			Scope:       domain.RefreshScopeAll,
			RequestedAt: time.Now().UTC(),
		}
		if err := refreshQueue.Enqueue(req.Context(), job); err != nil {
			logger.Error().Err(err).Msg("api: refresh enqueue failed")
			writeError(w, http.StatusInternalServerError, "failed to enqueue refresh")
			return
		}
		metrics.RefreshJobsTotal.Inc()
		writeJSON(w, http.StatusAccepted, apiResponse{Success: true, Data: map[string]string{"jobId": job.ID}})
	})

	r.Get("/api/v1/companies", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: reg.Companies()})
	})

	r.Get("/api/v1/companies/{id}/news", func(w http.ResponseWriter, req *http.Request) {
		company, ok := reg.ByID(chi.URLParam(req, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "company not found")
			return
		}
		items, err := feedService.CompanyNews(req.Context(), company)
		if err != nil {
			logger.Error().Err(err).Str("company", company.Name).Msg("api: company news failed")
			writeJSON(w, http.StatusOK, apiResponse{Success: false, Data: []domain.FeedItem{}})
			return
		}
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: flags.Apply(items)})
	})

	r.Patch("/api/v1/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		defer req.Body.Close()
		var update itemUpdateRequest
		if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if update.Bookmarked == nil && update.Read == nil {
			writeError(w, http.StatusBadRequest, "nothing to update")
			return
		}
		id := chi.URLParam(req, "id")
		if update.Bookmarked != nil {
			flags.SetBookmarked(id, *update.Bookmarked)
		}
		if update.Read != nil {
			flags.SetRead(id, *update.Read)
		}
		writeJSON(w, http.StatusOK, apiResponse{Success: true})
	})

	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), cfg.MetricsAddr)
	go func() {
		if err := server.Start(":" + strconv.Itoa(cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("api: server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("api: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func feedOptions(cfg config.AppConfig) feed.Options {
	return feed.Options{
		Locale:             domain.Locale{GL: cfg.Locale.GL, HL: cfg.Locale.HL},
		PerCompanyLimit:    cfg.Feed.PerCompanyLimit,
		GeneralSearchLimit: cfg.Feed.GeneralSearchLimit,
		CompanyNewsLimit:   cfg.Feed.CompanyNewsLimit,
		GeneralNewsLimit:   cfg.Feed.GeneralNewsLimit,
		HighlightsLimit:    cfg.Feed.HighlightsLimit,
		HighlightThreshold: cfg.Feed.HighlightThreshold,
	}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type itemUpdateRequest struct {
	Bookmarked *bool `json:"bookmarked"`
	Read       *bool `json:"read"`
}

func emptyFeed() domain.AggregateResult {
	return domain.AggregateResult{
		CompanyNews: []domain.FeedItem{},
		GeneralNews: []domain.FeedItem{},
		Highlights:  []domain.FeedItem{},
	}
}

func applyFlags(flags *statestore.Memory, result domain.AggregateResult) domain.AggregateResult {
	result.CompanyNews = flags.Apply(result.CompanyNews)
	result.GeneralNews = flags.Apply(result.GeneralNews)
	result.Highlights = flags.Apply(result.Highlights)
	return result
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Success: false, Message: msg})
}
