package objectstore

import (
	"context"

	"assetgate/internal/domain/entity"
)

// Fetcher opens an object on any HTTP-reachable origin.
type Fetcher interface {
	FetchByURL(ctx context.Context, url string) (*entity.Object, error)
}
