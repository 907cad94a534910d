package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetgate/internal/domain/model"
)

type AssetWriter struct {
	db *Database
}

func NewAssetWriter(db *Database) *AssetWriter {
	return &AssetWriter{db: db}
}

// Write replaces the document of id, creating it when absent.
func (w *AssetWriter) Write(ctx context.Context, id string, record *model.Record) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	doc := assetDocument{
		ID:        id,
		Record:    record,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := w.db.collection().ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))

	return err
}
