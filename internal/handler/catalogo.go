package handler

import (
	"net/http"

	"clamoresul/internal/apierror"
	"clamoresul/internal/dto"
	"clamoresul/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// Listar GET /v1/catalogo?categoria_id=&busca=
// Store failures degrade to the demo dataset inside the repository
// decorator, so an error here is exceptional.
func (h *CatalogoHandler) Listar(c *gin.Context) {
	var filtro dto.CatalogoFilter
	_ = c.ShouldBindQuery(&filtro)
	// A malformed categoria_id is a client bug; reject it instead of
	// silently returning the unfiltered list.
	if err := validate.Struct(filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("categoria_id inválido"))
		return
	}

	resp, err := h.svc.Carregar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar catálogo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
