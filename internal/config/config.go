package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	productionUpstreamURL = "https://api.eventdesk.io/api"
	localUpstreamURL      = "http://localhost:9090/api"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Env                  string
	UpstreamURL          string
	TokenPath            string
	SessionSecret        string
	SessionIssuer        string
	SessionTTLSeconds    int64
	PageSize             int
	MetricsDiskPath      string
	MetricsSampleSeconds int
	CorsOrigins          []string
}

func Load() Config {
	env := envOr("APP_ENV", "local")
	upstream := strings.TrimSpace(os.Getenv("UPSTREAM_URL"))
	if upstream == "" {
		if env == "production" {
			upstream = productionUpstreamURL
		} else {
			upstream = localUpstreamURL
		}
	}
	return Config{
		Env:                  env,
		UpstreamURL:          strings.TrimRight(upstream, "/"),
		TokenPath:            envOr("TOKEN_PATH", "storage/session/token"),
		SessionSecret:        mustEnv("SESSION_SECRET"),
		SessionIssuer:        envOr("SESSION_ISSUER", "eventdesk-console"),
		SessionTTLSeconds:    int64(envOrInt("SESSION_TTL_SECONDS", 28800)),
		PageSize:             envOrInt("PAGE_SIZE", 10),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "storage"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
