package handler

import (
	"errors"
	"net/http"

	"clamoresul/internal/apierror"
	"clamoresul/internal/dto"
	"clamoresul/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Listar GET /v1/admin/produtos — every product, newest first.
func (h *ProdutosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /v1/admin/produtos
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		// Store errors surface raw to the admin; no partial application.
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /v1/admin/produtos/:id
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Atualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		status := http.StatusBadRequest
		if errors.Is(svcErr, service.ErrProdutoNaoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /v1/admin/produtos/:id — hard delete.
func (h *ProdutosHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Excluir(c.Request.Context(), id); svcErr != nil {
		status := http.StatusBadRequest
		if errors.Is(svcErr, service.ErrProdutoNaoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(svcErr.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
