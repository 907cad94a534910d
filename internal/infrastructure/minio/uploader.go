package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"assetgate/internal/domain/entity"
)

// partSize bounds the memory held per multipart chunk when the size is unknown.
const partSize = 16 * 1024 * 1024

type Uploader struct {
	minioClient *minio.Client
	bucket      string
	cfg         *UploaderConfig
}

func NewUploader(client *Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: client.MinioClient,
		bucket:      client.Bucket,
		cfg:         config,
	}
}

// UploadFile streams body into key. fileSize is -1 when unknown; otherwise
// the stored object must match it or it is removed again.
func (u *Uploader) UploadFile(ctx context.Context, body io.Reader, fileSize int64, key,
	expectedType string,
) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := u.minioClient.PutObject(ctx, u.bucket, key, body, fileSize, minio.PutObjectOptions{
		ContentType: expectedType,
		PartSize:    partSize,
	})
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return entity.UploadResult{}, fmt.Errorf("upload failed: %w", err)
	}

	if info.Size == 0 {
		u.cleanup(ctx, key)

		return entity.UploadResult{}, errors.New("read error: empty file")
	}

	err = validateFileSize(info.Size, fileSize)
	if err == nil && fileSize != -1 && trailingBytes(body) {
		err = fmt.Errorf("file size mismatch: body is longer than %d bytes", fileSize)
	}
	if err != nil {
		u.cleanup(ctx, key)

		return entity.UploadResult{}, err
	}

	return entity.UploadResult{
		Key:  key,
		Size: info.Size,
		Type: expectedType,
	}, nil
}

func validateFileSize(totalBytes, expectedSize int64) error {
	if totalBytes != expectedSize && expectedSize != -1 {
		return fmt.Errorf("file size mismatch: read %d bytes, expected %d", totalBytes, expectedSize)
	}

	return nil
}

// trailingBytes reports whether body still holds data after a sized upload.
func trailingBytes(body io.Reader) bool {
	var b [1]byte
	n, _ := io.ReadFull(body, b[:])

	return n > 0
}

func (u *Uploader) cleanup(ctx context.Context, key string) {
	if err := u.minioClient.RemoveObject(ctx, u.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.Error("failed to remove rejected object", "key", key, "err", err)
	}
}
