package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	cfg := New()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "payments", cfg.Kafka.Topic)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	// некорректное значение заменяется значением по умолчанию
	assert.Equal(t, 1000, cfg.Cache.Capacity)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:    "unknown env",
			modify:  func(c *Config) { c.Env = "dev" },
			wantErr: true,
		},
		{
			name:    "no postgres password",
			modify:  func(c *Config) { c.Postgres.Password = "" },
			wantErr: true,
		},
		{
			name:    "zero cache capacity",
			modify:  func(c *Config) { c.Cache.Capacity = 0 },
			wantErr: true,
		},
		{
			name:    "invalid broker",
			modify:  func(c *Config) { c.Kafka.Brokers = []string{"kafka"} },
			wantErr: true,
		},
		{
			name:    "no request timeout",
			modify:  func(c *Config) { c.Http.RequestTimeout = 0 },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_USER", "postgres")
			t.Setenv("POSTGRES_PASSWORD", "secret")

			cfg := New()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
