package objectstore

import (
	"context"
	"io"

	"assetgate/internal/domain/entity"
)

type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, fileSize int64, key,
		expectedType string,
	) (entity.UploadResult, error)
}
