package database

import (
	"context"
	"errors"

	"assetgate/internal/domain/model"
)

// ErrNotFound is returned when no record exists for an asset id.
var ErrNotFound = errors.New("record not found")

// Retriever loads the persisted record of an asset.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Record, error)
}
