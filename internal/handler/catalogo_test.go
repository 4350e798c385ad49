package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clamoresul/internal/dto"
	"clamoresul/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubCatalogoService struct {
	resp    *dto.CatalogoResponse
	err     error
	chamado bool
}

func (s *stubCatalogoService) Carregar(_ context.Context, _ dto.CatalogoFilter) (*dto.CatalogoResponse, error) {
	s.chamado = true
	return s.resp, s.err
}

func getCatalogo(svc *stubCatalogoService, query string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCatalogoHandler(svc)
	r.GET("/v1/catalogo", h.Listar)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/catalogo"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogoHandler_SemFiltro(t *testing.T) {
	svc := &stubCatalogoService{resp: &dto.CatalogoResponse{}}
	w := getCatalogo(svc, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.chamado)
}

func TestCatalogoHandler_CategoriaValida(t *testing.T) {
	svc := &stubCatalogoService{resp: &dto.CatalogoResponse{}}
	w := getCatalogo(svc, "?categoria_id="+uuid.NewString()+"&busca=kit")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogoHandler_CategoriaMalformada_400(t *testing.T) {
	// A bogus categoria_id must not fall through to the unfiltered list.
	svc := &stubCatalogoService{resp: &dto.CatalogoResponse{}}
	w := getCatalogo(svc, "?categoria_id=nao-e-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.chamado)
}
