package abstraction

import (
	"context"
	"io"

	"assetgate/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, body io.Reader, fileSize int64, expectedType string) (entity.UploadResult, error)
}
