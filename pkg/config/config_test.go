package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Inventory.AllowNegativeStock, "por defecto se permite stock negativo")
	assert.Equal(t, "lilis_session", cfg.Session.CookieName)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 30, cfg.DB.StatementTimeoutSecs)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVENTORY_ALLOW_NEGATIVE_STOCK", "false")
	t.Setenv("APP_BASE_URL", "https://lilis.cl/")
	t.Setenv("DB_MAX_CONNS", "4")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Inventory.AllowNegativeStock)
	assert.Equal(t, "https://lilis.cl", cfg.App.BaseURL)
	assert.Equal(t, 4, cfg.DB.MaxConns)
}

func TestLoad_ProduccionExigeSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "lilis", Password: "p@ss:word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://lilis:p%40ss%3Aword@db:5432/inv?sslmode=disable", c.DSN())
}
