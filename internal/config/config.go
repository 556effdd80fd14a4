// Package config centralises configuration parsing for the activity directory service.
package config

import (
	"os"
	"strings"
)

// Config captures runtime configuration values for the service.
type Config struct {
	HTTPAddress  string
	KafkaBrokers []string // empty disables event publishing
	RosterTopic  string
	SeedFile     string // optional JSON dataset; built-in fixture when empty
	CORSOrigin   string
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8080"),
		KafkaBrokers: splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		RosterTopic:  getEnv("ROSTER_EVENTS_TOPIC", "roster_events"),
		SeedFile:     getEnv("SEED_FILE", ""),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
