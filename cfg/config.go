package cfg

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
}

// SkyScrapperConfig holds the flight/airport provider settings. An empty APIKey is
// allowed: the client then fails every call and the search path degrades to fallback data.
type SkyScrapperConfig struct {
	APIKey       string
	Host         string
	BaseURL      string
	Timeout      time.Duration
	LanguageCode string
	CountryCode  string
	Currency     string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type ObservabilityConfig struct {
	Enabled        bool
	OTLPEndpoint   string
	ServiceName    string
	Environment    string
	SampleRatio    float64
	MetricInterval time.Duration
}

type Config struct {
	AppEnv                 string
	AppPort                string
	NodeID                 int64
	Redis                  RedisConfig
	SkyScrapper            SkyScrapperConfig
	RateLimit              RateLimitConfig
	Observability          ObservabilityConfig
	AirportCacheTTLMinutes int
	SessionTTL             time.Duration
}

const defaultSkyHost = "sky-scrapper.p.rapidapi.com"

func Load() (*Config, error) {
	var errs []error

	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	nodeID := intEnv("NODE_ID", 1, &errs)
	cacheTTL := intEnv("AIRPORT_CACHE_TTL_MINUTES", 60, &errs)
	sessionTTL := intEnv("SESSION_TTL_MINUTES", 30, &errs)
	timeoutSeconds := intEnv("SKY_TIMEOUT_SECONDS", 10, &errs)
	burst := intEnv("SKY_RATE_BURST", 5, &errs)
	rps := floatEnv("SKY_RATE_PER_SECOND", 1, &errs)

	redisEnabled := boolEnv("REDIS_ENABLED", false, &errs)
	var redisHost, redisPort string
	if redisEnabled {
		redisHost = mustEnv("REDIS_HOST", &errs)
		redisPort = mustEnv("REDIS_PORT", &errs)
	}

	otelEnabled := boolEnv("OTEL_ENABLED", false, &errs)
	sampleRatio := floatEnv("OTEL_TRACES_SAMPLE_RATIO", 1, &errs)
	metricSeconds := intEnv("OTEL_METRIC_INTERVAL_SECONDS", 30, &errs)
	var otlpEndpoint string
	if otelEnabled {
		otlpEndpoint = mustEnv("OTEL_EXPORTER_OTLP_ENDPOINT", &errs)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	skyHost := getEnv("SKY_API_HOST", defaultSkyHost)

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		NodeID:  int64(nodeID),
		Redis: RedisConfig{
			Enabled:  redisEnabled,
			Host:     redisHost,
			Port:     redisPort,
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		SkyScrapper: SkyScrapperConfig{
			APIKey:       os.Getenv("SKY_API_KEY"),
			Host:         skyHost,
			BaseURL:      getEnv("SKY_BASE_URL", "https://"+skyHost+"/api/v1/flights"),
			Timeout:      time.Duration(timeoutSeconds) * time.Second,
			LanguageCode: "en-US",
			CountryCode:  "US",
			Currency:     "USD",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
		Observability: ObservabilityConfig{
			Enabled:        otelEnabled,
			OTLPEndpoint:   otlpEndpoint,
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "flightdemo"),
			Environment:    appEnv,
			SampleRatio:    sampleRatio,
			MetricInterval: time.Duration(metricSeconds) * time.Second,
		},
		AirportCacheTTLMinutes: cacheTTL,
		SessionTTL:             time.Duration(sessionTTL) * time.Minute,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return b
}
