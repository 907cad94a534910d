package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetgate/internal/application/usecase/abstraction"
	"assetgate/internal/presentation"
)

type HeadHandler struct {
	retriever abstraction.Retriever
}

func NewHeadHandler(retriever abstraction.Retriever) *HeadHandler {
	return &HeadHandler{
		retriever: retriever,
	}
}

// HandleHead handles HEAD /<id> and HEAD /<id>/<variant> requests without
// touching the object stores.
func (h *HeadHandler) HandleHead(c echo.Context) error {
	d, err := h.retriever.Describe(c.Request().Context(), c.Param(presentation.IDParam),
		c.Param(presentation.VariantParam))
	if err != nil {
		return respondError(c, err)
	}

	copyHeaders(c, d)

	return c.NoContent(http.StatusOK)
}
