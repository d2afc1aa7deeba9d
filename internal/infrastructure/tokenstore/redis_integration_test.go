//go:build integration

package tokenstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/tokenstore"
)

func TestIntegration_RedisStore(t *testing.T) {
	ctx := context.Background()
	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := tokenstore.NewRedis(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	s := tokenstore.NewRedisStore(rdb)
	require.NoError(t, s.Save(ctx, "tok", "u1", time.Minute))

	id, err := s.Consume(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	id, err = s.Consume(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.Save(ctx, "corto", "u2", time.Second))
	time.Sleep(1500 * time.Millisecond)
	id, err = s.Consume(ctx, "corto")
	require.NoError(t, err)
	assert.Empty(t, id)
}
