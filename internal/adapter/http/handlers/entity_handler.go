package handlers

import (
	response "clinica_finanzas/internal/adapter/http/dto/response"
	"clinica_finanzas/internal/usecase"
	"clinica_finanzas/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errEntityNotFound = pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Entity not found", http.StatusNotFound)

// EntityHandler exposes registry lookups (patients and companies).
type EntityHandler struct {
	registry usecase.IEntityRegistry
}

func NewEntityHandler(registry usecase.IEntityRegistry) *EntityHandler {
	return &EntityHandler{registry: registry}
}

// GetEntity godoc
// @Summary      Resolve a payer id
// @Tags         entities
// @Produce      json
// @Param        id   path      string  true  "Patient or company ID"
// @Success      200  {object}  response.EntityResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /entities/{id} [get]
func (h *EntityHandler) GetEntity(c *gin.Context) {
	e, ok := h.registry.Resolve(c.Param("id"))
	if !ok {
		writeError(c, errEntityNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromEntity(e))
}
