package abstraction

import (
	"context"

	"assetgate/internal/domain/entity"
)

// Retriever resolves an asset and opens the chosen representation.
// token is the optional path segment after the asset id.
type Retriever interface {
	Retrieve(ctx context.Context, id, token string) (*entity.Delivery, error)
	Describe(ctx context.Context, id, token string) (*entity.Delivery, error)
}
