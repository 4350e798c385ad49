package handler

import (
	"net/http"
	"time"

	"clamoresul/internal/dto"
	"clamoresul/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	visitanteCookie = "visitor_id"
	// One year: the id must outlive the session, it deduplicates visit
	// counts across return visits.
	visitanteCookieMaxAge = 365 * 24 * 60 * 60
)

type VisitasHandler struct{ dispatcher worker.VisitaEnqueuer }

func NewVisitasHandler(dispatcher worker.VisitaEnqueuer) *VisitasHandler {
	return &VisitasHandler{dispatcher: dispatcher}
}

// Registrar POST /v1/visitas — the page-view beacon, called once per page
// load of the public site shell. Best-effort by contract: whatever goes
// wrong (bad body, queue down), the response is 204 and the failure is
// only visible at debug level.
func (h *VisitasHandler) Registrar(c *gin.Context) {
	visitanteID := h.ensureVisitanteID(c)

	var req dto.RegistrarVisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Pagina == "" {
		c.Status(http.StatusNoContent)
		return
	}

	job := worker.VisitaJob{
		VisitanteID: visitanteID,
		Pagina:      req.Pagina,
		Referrer:    req.Referrer,
		UserAgent:   c.Request.UserAgent(),
		Quando:      time.Now(),
	}
	if err := h.dispatcher.EnqueueVisita(c.Request.Context(), job); err != nil {
		log.Debug().Err(err).Msg("visita descartada: fila indisponível")
	}
	c.Status(http.StatusNoContent)
}

// ensureVisitanteID reads the persistent visitor cookie, generating and
// setting a new id when absent or malformed. Two requests from the same
// browser context always carry the same id; clearing cookies yields a new
// one.
func (h *VisitasHandler) ensureVisitanteID(c *gin.Context) string {
	if raw, err := c.Cookie(visitanteCookie); err == nil {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	c.SetCookie(visitanteCookie, id, visitanteCookieMaxAge, "/", "", false, false)
	return id
}
