package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deal_factory/internal/config"
)

func TestLoad(t *testing.T) {
	r := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost/deal_factory")
	t.Setenv("SCANNER_ZIP_CODES", "19121,19122")
	t.Setenv("TG_BOT_TOKEN", "123:abc")

	cfg, err := config.Load()
	r.NoError(err)

	r.Equal(":8080", cfg.HTTP.ListenAddress)
	r.Equal(5, cfg.Postgres.MaxOpenConns)
	r.Equal(15*time.Minute, cfg.Scanner.Interval)
	r.Equal([]string{"19121", "19122"}, cfg.Scanner.ZipCodes)
	r.Equal("gemini-2.0-flash", cfg.Gemini.Model)
	r.Equal(72*time.Hour, cfg.Redis.EventTTL)
	r.False(cfg.Redis.Enabled())
	r.True(cfg.Telegram.Enabled())
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("PG_DSN", "")

	_, err := config.Load()
	require.Error(t, err)
}
