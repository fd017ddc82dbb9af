package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	SearchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_errors_total",
		Help: "Failed search provider queries",
	})
	AggregationBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aggregation_build_seconds",
		Help:    "Time spent building one full feed aggregation",
		Buckets: prometheus.DefBuckets,
	})
	FeedItemsByCompany = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_items_total",
		Help: "Feed items produced per company",
	}, []string{"company_id"})
	RefreshJobsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "refresh_jobs_total",
		Help: "Refresh jobs consumed by the worker",
	})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Duration of outbound network requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"component", "operation", "target", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Count of outbound network requests",
	}, []string{"component", "operation", "target", "status"})
)

// MustRegister registers all collectors.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		SearchErrors,
		AggregationBuildSeconds,
		FeedItemsByCompany,
		RefreshJobsTotal,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// StartServer runs an HTTP server with the /metrics endpoint on addr.
func StartServer(ctx context.Context, logger zerolog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: graceful shutdown failed")
		}
	}()

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics: server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: server stopped")
		}
	}()
}

// ObserveNetworkRequest records the duration and status of one outbound
// request.
func ObserveNetworkRequest(component, operation, target string, start time.Time, err error) {
	if component == "" {
		component = "unknown"
	}
	if operation == "" {
		operation = "unknown"
	}
	if target == "" {
		target = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	duration := time.Since(start).Seconds()
	NetworkRequestDuration.WithLabelValues(component, operation, target, status).Observe(duration)
	NetworkRequestTotal.WithLabelValues(component, operation, target, status).Inc()
}

// IncFeedItems counts produced feed items for a company.
func IncFeedItems(companyID string, n int) {
	if n <= 0 {
		return
	}
	FeedItemsByCompany.WithLabelValues(companyID).Add(float64(n))
}
