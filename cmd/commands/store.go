package commands

import (
	"context"
	"fmt"

	"github.com/dezh-tech/immortal/pkg/logger"

	"assetgate/config"
	repository "assetgate/internal/domain/repository/database"
	"assetgate/internal/infrastructure/database"
	"assetgate/internal/infrastructure/kvstore"
	"assetgate/internal/infrastructure/pgstore"
)

// metadataStore is the record store selected by metadata.driver.
type metadataStore interface {
	repository.Retriever
	repository.Writer
	Ping(ctx context.Context) error
}

type mongoStore struct {
	*database.Database
	*database.AssetRetriever
	*database.AssetWriter
}

func openMetadataStore(ctx context.Context, cfg *config.Config) (metadataStore, func(), error) {
	logger.Info("connecting to metadata store", "driver", cfg.Metadata.Driver)

	switch cfg.Metadata.Driver {
	case config.DriverMongo:
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			return nil, nil, err
		}

		store := mongoStore{
			Database:       db,
			AssetRetriever: database.NewAssetRetriever(db),
			AssetWriter:    database.NewAssetWriter(db),
		}

		return store, func() {
			if err := db.Stop(); err != nil {
				logger.Error("failed to disconnect mongo", "err", err)
			}
		}, nil

	case config.DriverRedis:
		store, err := kvstore.Connect(cfg.RedisStore)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {
			if err := store.Stop(); err != nil {
				logger.Error("failed to close redis store", "err", err)
			}
		}, nil

	case config.DriverPostgres:
		store, err := pgstore.Connect(ctx, cfg.PostgresStore)
		if err != nil {
			return nil, nil, err
		}

		return store, store.Stop, nil

	default:
		return nil, nil, fmt.Errorf("unknown metadata driver %q", cfg.Metadata.Driver)
	}
}
