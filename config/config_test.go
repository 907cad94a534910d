package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLoadfromFile(t *testing.T) {
	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("BROKER_URI", "")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, DriverMongo, cfg.Metadata.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)
	assert.Equal(t, "minioadmin", cfg.MinIOClient.AccessKey)
	assert.Equal(t, "assets", cfg.MinIOClient.Bucket)
	assert.Equal(t, "public, max-age=3600", cfg.CacheControl())
	assert.False(t, cfg.BrokerEnabled())
	assert.Equal(t, uint16(50051), cfg.GRPCServer.Port)
	assert.Equal(t, 10, cfg.Logger.MaxSize)
	assert.Equal(t, []string{"console"}, cfg.Logger.Targets)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("POSTGRES_URI", "")
	t.Setenv("BROKER_URI", "")

	base, err := os.ReadFile("./config.yml")
	require.NoError(t, err)

	tests := []struct {
		name    string
		replace [2]string
		want    string
	}{
		{"unknown driver", [2]string{"driver: mongo", "driver: sqlite"}, "unknown metadata driver"},
		{"postgres without uri", [2]string{"driver: mongo", "driver: postgres"}, "POSTGRES_URI"},
		{"relative public url", [2]string{`public_url: "http://localhost:8080"`, `public_url: "/assets"`},
			"public_url"},
		{"missing bucket", [2]string{"bucket: assets", "bucket: \"\""}, "minio_client"},
		{"missing query timeout", [2]string{"  query_timeout_in_ms: 3000\n", ""},
			"db_config.query_timeout_in_ms"},
		{"zero getter timeout", [2]string{"timeout_in_ms: 5000\n\norigin", "timeout_in_ms: 0\n\norigin"},
			"minio_getter.timeout_in_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			body := strings.Replace(string(base), tt.replace[0], tt.replace[1], 1)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := Load(path)
			require.Error(t, err)
			assert.IsType(t, Error{}, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err = Load("./missing.yml")
	assert.Error(t, err)
}

func TestCacheControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		maxAge int
		want   string
	}{
		{0, "public, max-age=3600"},
		{60, "public, max-age=60"},
		{-1, ""},
	}

	for _, tt := range tests {
		cfg := &Config{Default: Default{CacheMaxAge: tt.maxAge}}
		assert.Equal(t, tt.want, cfg.CacheControl())
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		perSecond float64
		want      rate.Limit
		ok        bool
	}{
		{0, 0, false},
		{-5, 0, false},
		{50, 50, true},
	}

	for _, tt := range tests {
		cfg := &Config{Default: Default{RateLimit: tt.perSecond}}
		limit, ok := cfg.RateLimit()
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, limit)
	}
}
