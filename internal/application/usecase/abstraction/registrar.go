package abstraction

import (
	"context"

	"assetgate/internal/domain/dto"
)

// Registrar validates and persists asset metadata.
type Registrar interface {
	Register(ctx context.Context, id string, req dto.RegisterRequest) (*dto.RegisterResponse, error)
}
