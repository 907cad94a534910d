package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetgate/internal/application/usecase/abstraction"
	"assetgate/internal/domain/dto"
	"assetgate/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload handles POST /objects requests. The body is streamed to the
// internal store and the generated key is returned for later registration.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	req := c.Request()

	result, err := h.uploader.Upload(req.Context(), req.Body, req.ContentLength, req.Header.Get(presentation.TypeKey))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ObjectDescriptor{
		Key:      result.Key,
		Size:     result.Size,
		FileType: result.Type,
	})
}
