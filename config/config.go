package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"net/url"
	"os"
	"slices"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"assetgate/internal/infrastructure/broker"
	"assetgate/internal/infrastructure/database"
	"assetgate/internal/infrastructure/grpcserver"
	"assetgate/internal/infrastructure/kvstore"
	"assetgate/internal/infrastructure/minio"
	"assetgate/internal/infrastructure/origin"
	"assetgate/internal/infrastructure/pgstore"
)

// Metadata store drivers.
const (
	DriverMongo    = "mongo"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

const defaultCacheMaxAge = 3600

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         Default                `yaml:"default"`
	Metadata        Metadata               `yaml:"metadata"`
	DBConfig        database.Config        `yaml:"db_config"`
	RedisStore      kvstore.Config         `yaml:"redis_store"`
	PostgresStore   pgstore.Config         `yaml:"postgres_store"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIOGetter     minio.GetterConfig     `yaml:"minio_getter"`
	Origin          origin.Config          `yaml:"origin"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	GRPCServer      grpcserver.Config      `yaml:"grpc_server"`
	Logger          logger.Config          `yaml:"logger"`
}

type Default struct {
	Address   string `yaml:"address"`
	PublicURL string `yaml:"public_url"`
	// CacheMaxAge is sent as Cache-Control max-age. Zero means the default,
	// a negative value omits the header.
	CacheMaxAge int `yaml:"cache_max_age_in_s"`
	// RateLimit is the per-client request rate; zero or less disables limiting.
	RateLimit float64 `yaml:"rate_limit_per_s"`
}

type Metadata struct {
	Driver string `yaml:"driver"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.RedisStore.URI = os.Getenv("METADATA_REDIS_URI")
	config.PostgresStore.URI = os.Getenv("POSTGRES_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// CacheControl is the Cache-Control value for asset responses, or "" when disabled.
func (c *Config) CacheControl() string {
	switch {
	case c.Default.CacheMaxAge < 0:
		return ""
	case c.Default.CacheMaxAge == 0:
		return fmt.Sprintf("public, max-age=%d", defaultCacheMaxAge)
	default:
		return fmt.Sprintf("public, max-age=%d", c.Default.CacheMaxAge)
	}
}

// RateLimit is the per-client request rate of the HTTP server. ok is false
// when requests are not limited.
func (c *Config) RateLimit() (limit rate.Limit, ok bool) {
	if c.Default.RateLimit <= 0 {
		return 0, false
	}

	return rate.Limit(c.Default.RateLimit), true
}

// BrokerEnabled reports whether registration events are published.
func (c *Config) BrokerEnabled() bool {
	return c.BrokerConfig.URI != ""
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address is required")
	}

	u, err := url.Parse(c.Default.PublicURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("default.public_url must be an absolute http(s) URL, got %q", c.Default.PublicURL)
	}

	switch c.Metadata.Driver {
	case DriverMongo:
		if c.DBConfig.URI == "" {
			return errors.New("DATABASE_URI is required for the mongo driver")
		}
	case DriverRedis:
		if c.RedisStore.URI == "" {
			return errors.New("METADATA_REDIS_URI is required for the redis driver")
		}
	case DriverPostgres:
		if c.PostgresStore.URI == "" {
			return errors.New("POSTGRES_URI is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown metadata driver %q", c.Metadata.Driver)
	}

	if c.MinIOClient.Endpoint == "" || c.MinIOClient.Bucket == "" {
		return errors.New("minio_client.endpoint and minio_client.bucket are required")
	}

	if c.BrokerEnabled() && (c.BrokerConfig.StreamName == "" || c.BrokerConfig.GroupName == "") {
		return errors.New("redis_broker_config.stream_name and group_name are required when BROKER_URI is set")
	}

	return c.checkTimeouts()
}

// checkTimeouts rejects missing timeouts of the components in use; a zero
// deadline would fail every call.
func (c *Config) checkTimeouts() error {
	timeouts := map[string]int64{
		"minio_uploader.timeout_in_ms": c.MinIOUploader.Timeout,
		"minio_getter.timeout_in_ms":   c.MinIOGetter.Timeout,
	}

	switch c.Metadata.Driver {
	case DriverMongo:
		timeouts["db_config.connection_timeout_in_ms"] = int64(c.DBConfig.ConnectionTimeout)
		timeouts["db_config.query_timeout_in_ms"] = int64(c.DBConfig.QueryTimeout)
	case DriverRedis:
		timeouts["redis_store.query_timeout_in_ms"] = int64(c.RedisStore.QueryTimeout)
	case DriverPostgres:
		timeouts["postgres_store.query_timeout_in_ms"] = int64(c.PostgresStore.QueryTimeout)
	}

	if c.BrokerEnabled() {
		timeouts["publisher_config.timeout_in_ms"] = int64(c.PublisherConfig.Timeout)
	}

	for _, key := range slices.Sorted(maps.Keys(timeouts)) {
		if timeouts[key] <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}

	return nil
}
