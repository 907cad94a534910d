package handler

import (
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"assetgate/internal/application/usecase/abstraction"
	"assetgate/internal/domain/entity"
	"assetgate/internal/presentation"
)

type GetHandler struct {
	retriever abstraction.Retriever
}

func NewGetHandler(retriever abstraction.Retriever) *GetHandler {
	return &GetHandler{
		retriever: retriever,
	}
}

// HandleGet handles GET /<id> and GET /<id>/<variant> requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	d, err := h.retriever.Retrieve(c.Request().Context(), id, c.Param(presentation.VariantParam))
	if err != nil {
		return respondError(c, err)
	}
	defer d.Close()

	copyHeaders(c, d)

	// Headers are committed once streaming starts; a broken stream can only be logged.
	if err := c.Stream(http.StatusOK, d.Header.Get(presentation.TypeKey), d.Body); err != nil {
		logger.Warn("asset stream interrupted", "id", id, "err", err)
	}

	return nil
}

func copyHeaders(c echo.Context, d *entity.Delivery) {
	h := c.Response().Header()
	for k, vs := range d.Header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
}
