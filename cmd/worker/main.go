package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"portfolio-pulse/internal/adapters/classifier"
	"portfolio-pulse/internal/adapters/notifier"
	"portfolio-pulse/internal/adapters/ranker"
	"portfolio-pulse/internal/adapters/relevance"
	"portfolio-pulse/internal/adapters/serpapi"
	"portfolio-pulse/internal/adapters/summarizer"
	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/infra/cache"
	"portfolio-pulse/internal/infra/config"
	infralog "portfolio-pulse/internal/infra/log"
	"portfolio-pulse/internal/infra/metrics"
	"portfolio-pulse/internal/infra/queue"
	"portfolio-pulse/internal/registry"
	"portfolio-pulse/internal/usecase/feed"
	"portfolio-pulse/internal/usecase/schedule"
)

const feedCacheKey = "feed:latest"

// refreshTimeout bounds one full aggregation run.
const refreshTimeout = 10 * time.Minute

func main() {
	cfg := config.Load()
	logger := infralog.NewLogger(cfg.AppEnv)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, err := registry.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to load company catalog")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	var feedCache domain.Cache
	if redisClient != nil {
		feedCache = cache.NewRedis(redisClient)
	} else {
		logger.Warn().Msg("worker: no redis configured, refreshed feeds will not be shared")
		feedCache = cache.NewMemory()
	}

	var refreshQueue domain.RefreshQueue
	switch {
	case cfg.AMQPURL != "":
		rabbit, err := queue.NewRabbitRefreshQueue(cfg.AMQPURL, cfg.Queues.Refresh)
		if err != nil {
			logger.Fatal().Err(err).Msg("worker: failed to connect refresh queue")
		}
		defer rabbit.Close()
		refreshQueue = rabbit
	case redisClient != nil:
		refreshQueue = queue.NewRedisRefreshQueue(redisClient, cfg.Queues.Refresh)
	default:
		logger.Fatal().Msg("worker: no broker configured, set AMQP_URL or REDIS_ADDR")
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
		feed.Options{
			Locale:             domain.Locale{GL: cfg.Locale.GL, HL: cfg.Locale.HL},
			PerCompanyLimit:    cfg.Feed.PerCompanyLimit,
			GeneralSearchLimit: cfg.Feed.GeneralSearchLimit,
			CompanyNewsLimit:   cfg.Feed.CompanyNewsLimit,
			GeneralNewsLimit:   cfg.Feed.GeneralNewsLimit,
			HighlightsLimit:    cfg.Feed.HighlightsLimit,
			HighlightThreshold: cfg.Feed.HighlightThreshold,
		},
		logger.With().Str("component", "feed").Logger(),
	)

	var highlights domain.Notifier
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			logger.Fatal().Err(err).Msg("worker: failed to create telegram bot")
		}
		highlights = notifier.NewTelegram(bot, cfg.Telegram.ChatID, logger.With().Str("component", "notifier").Logger())
	}

	scheduler := schedule.NewScheduler(refreshQueue, cfg.Feed.RefreshInterval, logger.With().Str("component", "schedule").Logger())
	go func() {
		if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("worker: scheduler stopped")
		}
	}()

	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), cfg.MetricsAddr)

	logger.Info().Int("companies", reg.Len()).Msg("worker: started")
	for {
		job, err := refreshQueue.Pop(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info().Msg("worker: shutting down")
				return
			}
			logger.Error().Err(err).Msg("worker: queue pop failed")
			time.Sleep(time.Second)
			continue
		}
		processJob(ctx, job, feedService, feedCache, highlights, cfg.Feed.CacheTTL, logger)
	}
}

func processJob(ctx context.Context, job domain.RefreshJob, feedService domain.FeedService, feedCache domain.Cache, highlights domain.Notifier, ttl time.Duration, logger zerolog.Logger) {
	logger.Info().Str("job_id", job.ID).Str("scope", job.Scope).Msg("worker: refresh started")

	jobCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	result, err := feedService.Aggregate(jobCtx)
	if err != nil {
		logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: aggregation failed")
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: failed to encode feed")
		return
	}
	if err := feedCache.Set(jobCtx, feedCacheKey, data, ttl); err != nil {
		logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: failed to cache feed")
	}

	if highlights != nil {
		if err := highlights.NotifyHighlights(jobCtx, result.Highlights); err != nil {
			logger.Warn().Err(err).Str("job_id", job.ID).Msg("worker: highlights notification failed")
		}
	}

	logger.Info().
		Str("job_id", job.ID).
		Int("company_news", len(result.CompanyNews)).
		Int("general_news", len(result.GeneralNews)).
		Int("highlights", len(result.Highlights)).
		Msg("worker: refresh finished")
}
