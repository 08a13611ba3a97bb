package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "orders")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "retain", cfg.Orders.Retention)
	assert.Equal(t, 2*time.Second, cfg.Orders.LookupTimeout)
	assert.Equal(t, "orders.placed", cfg.Kafka.Topic)
	assert.True(t, cfg.Postgres.MigrationsEnabled)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "orders")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("ORDER_RETENTION", "delete")
	t.Setenv("ENRICHMENT_LOOKUP_TIMEOUT", "750ms")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("MIGRATIONS_ENABLED", "false")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "delete", cfg.Orders.Retention)
	assert.Equal(t, 750*time.Millisecond, cfg.Orders.LookupTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Postgres.MigrationsEnabled)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
}

func TestValidate_Rejects(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown retention", func(c *Config) { c.Orders.Retention = "archive" }},
		{"zero lookup timeout", func(c *Config) { c.Orders.LookupTimeout = 0 }},
		{"unknown env", func(c *Config) { c.Env = "dev" }},
		{"no brokers", func(c *Config) { c.Kafka.Brokers = nil }},
		{"missing db user", func(c *Config) { c.Postgres.User = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_USER", "orders")
			t.Setenv("POSTGRES_PASSWORD", "secret")

			cfg := New()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
