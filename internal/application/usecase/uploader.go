package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"assetgate/internal/domain/asset"
	"assetgate/internal/domain/entity"
	"assetgate/internal/domain/repository/objectstore"
	"assetgate/pkg/utils"
)

// sniffLen is how much of the body is inspected to detect its type.
const sniffLen = 3072

var ErrEmptyUpload = errors.New("read error: empty file")

// Uploader stores request bodies in the internal object store under a fresh key.
type Uploader struct {
	objects objectstore.Uploader
}

func NewUploader(objects objectstore.Uploader) *Uploader {
	return &Uploader{
		objects: objects,
	}
}

// Upload streams body to the object store. Only a short prefix is held in
// memory for type detection. expectedType, when set, must match the content.
func (u *Uploader) Upload(ctx context.Context, body io.Reader, fileSize int64,
	expectedType string,
) (entity.UploadResult, error) {
	br := bufio.NewReaderSize(body, sniffLen)

	prefix, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return entity.UploadResult{}, &asset.Error{Kind: asset.KindValidation, Field: "body",
			Err: fmt.Errorf("read error: %w", err)}
	}

	if len(prefix) == 0 {
		return entity.UploadResult{}, &asset.Error{Kind: asset.KindValidation, Field: "body", Err: ErrEmptyUpload}
	}

	detected := mimetype.Detect(prefix)
	if !typeMatches(detected, expectedType) {
		return entity.UploadResult{}, &asset.Error{
			Kind:  asset.KindValidation,
			Field: "content_type",
			Err:   fmt.Errorf("invalid file type: detected %s, expected %s", detected.String(), expectedType),
		}
	}

	key := uuid.NewString() + utils.GetExtensionFromMimeType(detected.String())

	result, err := u.objects.UploadFile(ctx, br, fileSize, key, detected.String())
	if err != nil {
		logger.Error("upload failed", "key", key, "err", err)

		return entity.UploadResult{}, asset.Upstream(err)
	}

	uploadBytesTotal.Add(float64(result.Size))

	return result, nil
}

func typeMatches(detected *mimetype.MIME, expected string) bool {
	expected = strings.TrimSpace(strings.Split(expected, ";")[0])
	if expected == "" || expected == "application/octet-stream" {
		return true
	}

	return detected.Is(expected)
}
