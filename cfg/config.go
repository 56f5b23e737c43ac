package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type FlightAPIConfig struct {
	BaseURL   string
	TimeoutMs int
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv              string
	AppPort             string
	RedisConfig         RedisConfig
	FlightAPIConfig     FlightAPIConfig
	Observability       ObservabilityConfig
	CacheTTLMinutes     int
	SnowflakeNodeID     int64
	CORSOrigins         []string
	SortDurationNumeric bool
}

// Load reads .env (if present) and the process environment. Every missing or
// malformed variable is reported in the returned error.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := envOr("APP_PORT", "8080")
	flightAPIBaseURL := mustEnv("FLIGHT_API_BASE_URL", &errs)

	timeoutMs := intEnv("FLIGHT_API_TIMEOUT_MS", 7000, &errs)
	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", 10, &errs)
	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	redisHost := os.Getenv("REDIS_HOST")
	redisPort := envOr("REDIS_PORT", "6379")

	sortNumeric, err := strconv.ParseBool(envOr("SORT_DURATION_NUMERIC", "false"))
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: SORT_DURATION_NUMERIC"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		FlightAPIConfig: FlightAPIConfig{
			BaseURL:   strings.TrimRight(flightAPIBaseURL, "/"),
			TimeoutMs: timeoutMs,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  envOr("OTEL_SERVICE_NAME", "tripar"),
			Environment:  appEnv,
		},
		CacheTTLMinutes:     cacheTTLMinutes,
		SnowflakeNodeID:     int64(nodeID),
		CORSOrigins:         splitCSV(envOr("CORS_ORIGINS", "http://localhost:5173,http://localhost:5175,http://localhost:5000")),
		SortDurationNumeric: sortNumeric,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
