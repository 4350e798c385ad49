package handler

import (
	"net/http"

	"clamoresul/internal/apierror"
	"clamoresul/internal/dto"
	"clamoresul/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler {
	return &VendasHandler{svc: svc}
}

// Criar POST /v1/admin/vendas
func (h *VendasHandler) Criar(c *gin.Context) {
	var req dto.CriarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
