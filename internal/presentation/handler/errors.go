package handler

import (
	"errors"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"assetgate/internal/domain/asset"
	"assetgate/internal/domain/dto"
	"assetgate/internal/presentation"
)

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeUpstream       = "UPSTREAM_UNAVAILABLE"
	CodeInternal       = "INTERNAL_ERROR"
)

func statusOf(kind asset.Kind) (int, string) {
	switch kind {
	case asset.KindValidation:
		return http.StatusBadRequest, CodeValidation
	case asset.KindInvalidRequest:
		return http.StatusBadRequest, CodeInvalidRequest
	case asset.KindNotFound:
		return http.StatusNotFound, CodeNotFound
	case asset.KindUpstream:
		return http.StatusServiceUnavailable, CodeUpstream
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// respondError writes err as the JSON error envelope plus the X-Reason header.
// HEAD responses carry the status and header only.
func respondError(c echo.Context, err error) error {
	detail := dto.ErrorDetail{Message: err.Error()}

	var e *asset.Error
	if errors.As(err, &e) {
		detail.Field = e.Field
		detail.Variant = e.Variant
	}

	status, code := statusOf(asset.KindOf(err))
	detail.Code = code

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.Request().URL.Path, "err", err)
		detail.Message = "internal error"
	}

	c.Response().Header().Set(presentation.ReasonTag, detail.Message)

	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}

	return c.JSON(status, dto.ErrorResponse{Error: detail})
}

func invalidRequest(c echo.Context, msg string) error {
	c.Response().Header().Set(presentation.ReasonTag, msg)

	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: msg,
	}})
}
