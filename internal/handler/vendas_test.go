package handler_test

import (
	"context"
	"net/http"
	"testing"

	"clamoresul/internal/dto"
	"clamoresul/internal/handler"
	"clamoresul/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVendaService struct {
	resp    *dto.VendaResponse
	err     error
	chamado bool
}

func (s *stubVendaService) Registrar(_ context.Context, req dto.CriarVendaRequest) (*dto.VendaResponse, error) {
	s.chamado = true
	return s.resp, s.err
}

func vendasRouter(svc service.VendaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewVendasHandler(svc)
	r.POST("/vendas", h.Criar)
	return r
}

func TestCriarVendaHandler_Sucesso(t *testing.T) {
	svc := &stubVendaService{resp: &dto.VendaResponse{ID: "v1", Status: "concluida"}}
	r := vendasRouter(svc)

	w := postJSON(r, "/vendas", map[string]any{"quantidade": 3, "preco_unitario": "10.50"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.chamado)
}

func TestCriarVendaHandler_SemPrecoUnitario_422(t *testing.T) {
	// An omitted unit price must be rejected, never recorded as a
	// zero-total sale that would leak into the revenue aggregates.
	svc := &stubVendaService{}
	r := vendasRouter(svc)

	w := postJSON(r, "/vendas", map[string]any{"quantidade": 3})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, svc.chamado)
}

func TestCriarVendaHandler_PrecoZeroExplicito_Aceito(t *testing.T) {
	// Free sample: an explicit zero is still a valid price.
	svc := &stubVendaService{resp: &dto.VendaResponse{ID: "v1"}}
	r := vendasRouter(svc)

	w := postJSON(r, "/vendas", map[string]any{"quantidade": 1, "preco_unitario": "0"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.chamado)
}

func TestCriarVendaHandler_QuantidadeZero_422(t *testing.T) {
	svc := &stubVendaService{}
	r := vendasRouter(svc)

	w := postJSON(r, "/vendas", map[string]any{"quantidade": 0, "preco_unitario": "10.00"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, svc.chamado)
}
