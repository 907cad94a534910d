package kvstore

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}
	t.Cleanup(func() { _ = redisC.Terminate(context.Background()) })

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func TestStore(t *testing.T) {
	t.Parallel()

	store, err := Connect(Config{URI: setupRedis(t), KeyPrefix: "asset:", QueryTimeout: 3000})
	require.NoError(t, err)
	defer store.Stop()

	ctx := context.Background()

	_, err = store.GetByID(ctx, "A1")
	require.ErrorIs(t, err, database.ErrNotFound)

	size := int64(42)
	first := &model.Record{StorageMode: model.InternalKey, PrimaryLocation: "a1.bin", SizeBytes: &size}
	second := &model.Record{
		StorageMode:    model.InternalKey,
		IsImage:        true,
		DefaultVariant: model.Thumb,
		Variants: map[model.VariantName]model.VariantRecord{
			model.Thumb: {Key: "a1/thumb.jpg", Width: 200, Height: 150, SizeBytes: 10},
		},
	}

	require.NoError(t, store.Write(ctx, "A1", first))
	got, err := store.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, store.Write(ctx, "A1", second))
	got, err = store.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	exists, err := store.redis.Exists(ctx, "asset:A1").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	require.NoError(t, store.redis.Set(ctx, "asset:broken", "{not json", 0).Err())
	_, err = store.GetByID(ctx, "broken")
	assert.ErrorIs(t, err, model.ErrCorruptRecord)
}
