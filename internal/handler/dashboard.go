package handler

import (
	"errors"
	"net/http"
	"time"

	"clamoresul/internal/apierror"
	"clamoresul/internal/dto"
	"clamoresul/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Obter GET /v1/admin/dashboard?de=YYYY-MM-DD&ate=YYYY-MM-DD
// Defaults: the last month up to today. "ate" is inclusive end-of-day.
func (h *DashboardHandler) Obter(c *gin.Context) {
	var filtro dto.DashboardFilter
	_ = c.ShouldBindQuery(&filtro)

	de, ate, err := parsePeriodo(filtro)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Período inválido: use datas YYYY-MM-DD com 'de' anterior ou igual a 'ate'"))
		return
	}

	resp, svcErr := h.svc.Computar(c.Request.Context(), de, ate)
	if svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

var errPeriodoInvertido = errors.New("período invertido")

func parsePeriodo(filtro dto.DashboardFilter) (time.Time, time.Time, error) {
	agora := time.Now()
	// Local calendar midnight, not Truncate: Truncate works against the
	// UTC epoch and lands on the wrong local midnight outside UTC.
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	de := hoje.AddDate(0, -1, 0)
	ate := agora

	if filtro.De != "" {
		d, err := time.Parse("2006-01-02", filtro.De)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		de = d
	}
	if filtro.Ate != "" {
		d, err := time.Parse("2006-01-02", filtro.Ate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		ate = d
	}
	// Upper bound is end-of-day inclusive.
	ate = time.Date(ate.Year(), ate.Month(), ate.Day(), 23, 59, 59, 0, ate.Location())
	if de.After(ate) {
		return time.Time{}, time.Time{}, errPeriodoInvertido
	}
	return de, ate, nil
}
