package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig describes the service configuration.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	TZ     string `envconfig:"TZ" default:"UTC"`
	Port   int    `envconfig:"PORT" default:"8080"`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	SerpAPI struct {
		Key        string        `envconfig:"SERPAPI_KEY"`
		BaseURL    string        `envconfig:"SERPAPI_BASE_URL"`
		Timeout    time.Duration `envconfig:"SERPAPI_TIMEOUT" default:"15s"`
		ResultHint int           `envconfig:"SERPAPI_RESULT_HINT" default:"10"`
	} `envconfig:""`

	Locale struct {
		GL string `envconfig:"SEARCH_GL" default:"us"`
		HL string `envconfig:"SEARCH_HL" default:"en"`
	} `envconfig:""`

	RedisAddr string `envconfig:"REDIS_ADDR"`
	AMQPURL   string `envconfig:"AMQP_URL"`

	Telegram struct {
		Token  string `envconfig:"TG_BOT_TOKEN"`
		ChatID int64  `envconfig:"TG_CHAT_ID"`
	} `envconfig:""`

	CatalogPath string `envconfig:"CATALOG_PATH"`

	Feed struct {
		CacheTTL           time.Duration `envconfig:"FEED_CACHE_TTL" default:"10m"`
		RefreshInterval    time.Duration `envconfig:"FEED_REFRESH_INTERVAL" default:"15m"`
		PerCompanyLimit    int           `envconfig:"FEED_PER_COMPANY_LIMIT" default:"10"`
		GeneralSearchLimit int           `envconfig:"FEED_GENERAL_SEARCH_LIMIT" default:"15"`
		CompanyNewsLimit   int           `envconfig:"FEED_COMPANY_NEWS_LIMIT" default:"50"`
		GeneralNewsLimit   int           `envconfig:"FEED_GENERAL_NEWS_LIMIT" default:"20"`
		HighlightsLimit    int           `envconfig:"FEED_HIGHLIGHTS_LIMIT" default:"5"`
		HighlightThreshold int           `envconfig:"FEED_HIGHLIGHT_THRESHOLD" default:"70"`
	} `envconfig:""`

	Queues struct {
		Refresh string `envconfig:"REFRESH_QUEUE_KEY" default:"refresh_jobs"`
	} `envconfig:""`
}

// Load reads the config from the environment.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
