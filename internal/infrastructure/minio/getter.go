package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"assetgate/internal/domain/entity"
	"assetgate/internal/domain/repository/objectstore"
)

type Getter struct {
	minioClient *minio.Client
	bucket      string
	cfg         *GetterConfig
}

func NewGetter(client *Client, cfg *GetterConfig) *Getter {
	return &Getter{
		minioClient: client.MinioClient,
		bucket:      client.Bucket,
		cfg:         cfg,
	}
}

// GetByKey opens key for streaming. The timeout covers opening the object
// only; the body is read under the caller's context.
func (g *Getter) GetByKey(ctx context.Context, key string) (*entity.Object, error) {
	statCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := g.minioClient.StatObject(statCtx, g.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, mapError(key, err)
	}

	obj, err := g.minioClient.GetObject(ctx, g.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapError(key, err)
	}

	return &entity.Object{
		Body:        obj,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

func mapError(key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", objectstore.ErrNotFound, key)
	default:
		return fmt.Errorf("%w: %w", objectstore.ErrUnavailable, err)
	}
}
