package pgstore

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
)

func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "assetgate",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "assetgate_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("Failed to start Postgres container:", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	return fmt.Sprintf("postgres://assetgate:testpass@%s/assetgate_test?sslmode=disable",
		net.JoinHostPort(host, port.Port()))
}

func TestStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := Connect(ctx, Config{URI: setupPostgres(t), QueryTimeout: 5000})
	require.NoError(t, err)
	defer store.Stop()

	_, err = store.GetByID(ctx, "A1")
	require.ErrorIs(t, err, database.ErrNotFound)

	width := 4416
	first := &model.Record{StorageMode: model.ExternalURL, PrimaryLocation: "https://cdn.example/a1"}
	second := &model.Record{
		StorageMode:    model.InternalKey,
		IsImage:        true,
		OriginalWidth:  &width,
		DefaultVariant: model.Original,
		Variants: map[model.VariantName]model.VariantRecord{
			model.Original: {Key: "a1/original.jpg", Width: 4416, Height: 3312, SizeBytes: 9000},
		},
	}

	require.NoError(t, store.Write(ctx, "A1", first))
	require.NoError(t, store.Write(ctx, "A1", second))

	got, err := store.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	var rows int
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT count(*) FROM asset_record`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestConnect_InvalidTable(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), Config{URI: "postgres://localhost/x", Table: "asset; DROP"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table name")
}
