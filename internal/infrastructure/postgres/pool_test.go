package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/postgres"
	"github.com/jhoicas/dulceria-lilis/pkg/config"
)

func TestPoolConfig_TamañoYParametros(t *testing.T) {
	pc, err := postgres.PoolConfig(config.DBConfig{
		Host: "db", Port: 5432, User: "lilis", Password: "secreto", DBName: "inv", SSLMode: "disable",
		MaxConns: 6, MinConns: 2, MaxConnLifetimeMin: 45, MaxConnIdleMin: 5,
		StatementTimeoutSecs: 12, AppName: "lilis-test",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(6), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, 45*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, pc.MaxConnIdleTime)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "lilis-test", pc.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "12000", pc.ConnConfig.RuntimeParams["statement_timeout"])
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfig_DatabaseURLYMinimoAcotado(t *testing.T) {
	pc, err := postgres.PoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@pg.local:6543/lilis?sslmode=disable",
		MaxConns:    2,
		MinConns:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, "pg.local", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, int32(2), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns, "un mínimo mayor que el máximo se ignora")
	_, ok := pc.ConnConfig.RuntimeParams["statement_timeout"]
	assert.False(t, ok)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := postgres.PoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
