package handler

import (
	"net/http"

	"clamoresul/internal/apierror"
	"clamoresul/internal/dto"
	"clamoresul/internal/repository"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ repo repository.CategoriaRepository }

func NewCategoriasHandler(repo repository.CategoriaRepository) *CategoriasHandler {
	return &CategoriasHandler{repo: repo}
}

// Listar GET /v1/admin/categorias — feeds the product form selector.
func (h *CategoriasHandler) Listar(c *gin.Context) {
	categorias, err := h.repo.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	resp := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, cat := range categorias {
		resp = append(resp, dto.CategoriaResponse{
			ID:        cat.ID.String(),
			Nome:      cat.Nome,
			Slug:      cat.Slug,
			Descricao: cat.Descricao,
			Ordem:     cat.Ordem,
		})
	}
	c.JSON(http.StatusOK, resp)
}
