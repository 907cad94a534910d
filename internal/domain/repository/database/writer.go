package database

import (
	"context"

	"assetgate/internal/domain/model"
)

// Writer replaces the record of an asset wholesale; the last write wins.
type Writer interface {
	Write(ctx context.Context, id string, record *model.Record) error
}
