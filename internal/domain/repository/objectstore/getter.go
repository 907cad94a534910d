package objectstore

import (
	"context"

	"assetgate/internal/domain/entity"
)

// Getter opens an object of the internal store by key.
type Getter interface {
	GetByKey(ctx context.Context, key string) (*entity.Object, error)
}
