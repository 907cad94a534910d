package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetgate/internal/application/usecase/abstraction"
	"assetgate/internal/domain/dto"
	"assetgate/internal/presentation"
)

type RegisterHandler struct {
	registrar abstraction.Registrar
	binder    echo.DefaultBinder
}

func NewRegisterHandler(registrar abstraction.Registrar) *RegisterHandler {
	return &RegisterHandler{
		registrar: registrar,
	}
}

// HandleCreate handles POST / requests; the asset id is generated.
func (h *RegisterHandler) HandleCreate(c echo.Context) error {
	return h.register(c, "", http.StatusCreated)
}

// HandleReplace handles PUT /<id> requests, replacing any record under id.
func (h *RegisterHandler) HandleReplace(c echo.Context) error {
	return h.register(c, c.Param(presentation.IDParam), http.StatusOK)
}

func (h *RegisterHandler) register(c echo.Context, id string, status int) error {
	var req dto.RegisterRequest
	if err := h.binder.BindBody(c, &req); err != nil {
		return invalidRequest(c, "malformed registration body")
	}

	resp, err := h.registrar.Register(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(status, resp)
}
