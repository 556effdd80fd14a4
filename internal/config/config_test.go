package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Empty(t, cfg.KafkaBrokers)
	require.Equal(t, "roster_events", cfg.RosterTopic)
	require.Empty(t, cfg.SeedFile)
	require.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092, ")
	t.Setenv("ROSTER_EVENTS_TOPIC", "school_roster")
	t.Setenv("CORS_ORIGIN", "https://portal.mergington.edu")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "school_roster", cfg.RosterTopic)
	require.Equal(t, "https://portal.mergington.edu", cfg.CORSOrigin)
}

func TestLoadIgnoresEmptyValues(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "")

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
}
