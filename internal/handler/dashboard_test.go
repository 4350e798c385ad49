package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clamoresul/internal/dto"
	"clamoresul/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubDashboardService struct {
	de, ate time.Time
	chamado bool
}

func (s *stubDashboardService) Computar(_ context.Context, de, ate time.Time) (*dto.DashboardResponse, error) {
	s.chamado = true
	s.de, s.ate = de, ate
	return &dto.DashboardResponse{}, nil
}

func getDashboard(svc *stubDashboardService, query string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewDashboardHandler(svc)
	r.GET("/dashboard", h.Obter)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_PeriodoExplicito(t *testing.T) {
	svc := &stubDashboardService{}
	w := getDashboard(svc, "?de=2026-08-01&ate=2026-08-31")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-08-01", svc.de.Format("2006-01-02"))
	// Upper bound extends to end-of-day so the last day is inclusive.
	assert.Equal(t, 23, svc.ate.Hour())
	assert.Equal(t, 59, svc.ate.Minute())
	assert.Equal(t, "2026-08-31", svc.ate.Format("2006-01-02"))
}

func TestDashboardHandler_PeriodoPadrao_MeiaNoiteLocal(t *testing.T) {
	svc := &stubDashboardService{}
	w := getDashboard(svc, "")
	assert.Equal(t, http.StatusOK, w.Code)
	// Default lower bound is local calendar midnight a month back.
	assert.Equal(t, 0, svc.de.Hour())
	assert.Equal(t, 0, svc.de.Minute())
	assert.Equal(t, time.Now().Location(), svc.de.Location())
	assert.True(t, svc.de.Before(svc.ate))
}

func TestDashboardHandler_DataMalformada_400(t *testing.T) {
	svc := &stubDashboardService{}
	w := getDashboard(svc, "?de=01/08/2026")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.chamado)
}

func TestDashboardHandler_PeriodoInvertido_400(t *testing.T) {
	svc := &stubDashboardService{}
	w := getDashboard(svc, "?de=2026-08-31&ate=2026-08-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.chamado)
}

func TestDashboardHandler_MesmoDia_Aceito(t *testing.T) {
	// de == ate is a valid one-day window (00:00:00 through 23:59:59).
	svc := &stubDashboardService{}
	w := getDashboard(svc, "?de=2026-08-15&ate=2026-08-15")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.ate.After(svc.de))
}
