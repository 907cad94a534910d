package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
)

type AssetRetriever struct {
	db *Database
}

func NewAssetRetriever(db *Database) *AssetRetriever {
	return &AssetRetriever{db: db}
}

func (r *AssetRetriever) GetByID(ctx context.Context, id string) (*model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res := r.db.collection().FindOne(ctx, bson.M{"_id": id})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	// The server answered; a failure past this point is in the stored bytes.
	var doc assetDocument
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCorruptRecord, err)
	}

	if doc.Record == nil {
		return nil, model.ErrCorruptRecord
	}

	return doc.Record, nil
}
