package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"assetgate/internal/presentation"
)

// Handlers groups the HTTP handlers of the gateway.
type Handlers struct {
	Register *RegisterHandler
	Get      *GetHandler
	Head     *HeadHandler
	Upload   *UploadHandler
	Health   *HealthHandler
}

// Mount registers the asset routes on e. Static routes win over /:id in echo,
// which is why health, metrics and objects are reserved asset ids.
func (h Handlers) Mount(e *echo.Echo) {
	byID := fmt.Sprintf("/:%s", presentation.IDParam)
	byVariant := fmt.Sprintf("/:%s/:%s", presentation.IDParam, presentation.VariantParam)

	if h.Health != nil {
		e.GET("/health", h.Health.HandleHealth)
	}

	e.POST("/objects", h.Upload.HandleUpload)

	e.POST("/", h.Register.HandleCreate)
	e.PUT(byID, h.Register.HandleReplace)

	e.GET(byID, h.Get.HandleGet)
	e.GET(byVariant, h.Get.HandleGet)
	e.HEAD(byID, h.Head.HandleHead)
	e.HEAD(byVariant, h.Head.HandleHead)
}
