package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tripar/cfg"
	"tripar/internal/booking"
	"tripar/internal/flight"
	"tripar/internal/middleware"
	"tripar/pkg/cache"
	"tripar/pkg/flightclient"
	"tripar/pkg/idgen"
	"tripar/pkg/logger"

	_ "tripar/cmd/tripar/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Tripar Flight API
// @version         1.0
// @description     Flight search, filtering, fare pricing and booking handoff.
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
	if config.Observability.OTLPEndpoint != "" {
		shutdownOtel, err := initOtel(context.Background(), &config.Observability, zlogger)
		if err != nil {
			log.Fatalf("failed to initialize OpenTelemetry: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
			}
		}()
	} else {
		zlogger.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing and metrics disabled")
	}

	// ============
	// Cache
	// ============
	var searchCache cache.Cache
	if config.RedisConfig.Enabled() {
		searchCache = cache.NewRedisCache(config.RedisConfig.Addr(), config.RedisConfig.Password)
		zlogger.Info("using redis cache", logger.Field{Key: "addr", Value: config.RedisConfig.Addr()})
	} else {
		searchCache = cache.NewMemoryCache()
		zlogger.Info("REDIS_HOST not set, using in-memory cache")
	}

	// ============
	// ID generator
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	fetchTimeout := time.Duration(config.FlightAPIConfig.TimeoutMs) * time.Millisecond
	httpClient := &http.Client{
		Timeout: fetchTimeout,
	}
	flightClient := flightclient.NewClient(httpClient, config.FlightAPIConfig.BaseURL, zlogger)

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(flightClient, searchCache, flight.ServiceConfig{
		CacheTTL:            time.Duration(config.CacheTTLMinutes) * time.Minute,
		FetchTimeout:        fetchTimeout,
		NumericDurationSort: config.SortDurationNumeric,
	}, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc, flight.NewCatalog(nil))

	bookingSvc := booking.NewService(ids, zlogger)
	bookingHandler := booking.NewBookingHandler(bookingSvc)

	// ============
	// HTTP
	// ============
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(middleware.TraceLoggerMiddleware(zlogger))

	r.GET("/health", healthHandler)
	flightHandler.RegisterRoutes(r)
	bookingHandler.RegisterRoutes(r)
	initSwagger(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           middleware.NewCORSHandler(config.CORSOrigins)(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlogger.Info("server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlogger.Error("server failed", logger.Field{Key: "err", Value: err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("graceful shutdown failed", logger.Field{Key: "err", Value: err})
	}
	zlogger.Info("server stopped")
}

// healthHandler godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Tripar API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
