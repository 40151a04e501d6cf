package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"flightdemo/cfg"
	"flightdemo/internal/flight"
	"flightdemo/pkg/cache"
	"flightdemo/pkg/flightclient"
	"flightdemo/pkg/idgen"
	"flightdemo/pkg/logger"
	"flightdemo/pkg/ratelimit"
	"flightdemo/pkg/telemetry"

	_ "flightdemo/cmd/flightdemo/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Flight Search API
// @version         1.0
// @description     Airport autocomplete, flight search with fallback offers and results-page sessions.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(context.Background(), &config.Observability, zlogger)
	if err != nil {
		log.Fatalf("failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(ctx); err != nil {
			zlogger.Error("failed to shutdown OpenTelemetry", logger.Err(err))
		}
	}()

	// ============
	// Cache
	// ============
	airportCache := cache.NewNoopCache()
	if config.Redis.Enabled {
		redisAddr := config.Redis.Host + ":" + config.Redis.Port
		airportCache = cache.NewRedisCache(redisAddr, config.Redis.Password)
	}

	// ============
	// ID generator
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: config.SkyScrapper.Timeout,
	}
	skyClient := flightclient.NewSkyScrapperClient(httpClient, config.SkyScrapper, zlogger)
	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerSecond: config.RateLimit.RequestsPerSecond,
		Burst:             config.RateLimit.Burst,
	})

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(skyClient, limiter, config.SkyScrapper.Timeout, zlogger)
	airports := flight.NewAirportDirectory(skyClient, airportCache, config.AirportCacheTTLMinutes, zlogger)
	builder := flight.NewBuilder(time.Now)
	sessions := flight.NewSessions(ids, builder, flightSvc, config.SessionTTL, zlogger)
	defer sessions.Stop()
	flightHandler := flight.NewFlightHandler(flightSvc, airports, sessions, builder)

	// ============
	// HTTP
	// ============
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(telemetry.TraceLoggerMiddleware(zlogger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	flightHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	zlogger.Info("starting server", logger.Field{Key: "addr", Value: addr})
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
