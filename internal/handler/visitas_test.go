package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clamoresul/internal/handler"
	"clamoresul/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubEnqueuer struct {
	jobs []worker.VisitaJob
	err  error
}

func (s *stubEnqueuer) EnqueueVisita(_ context.Context, job worker.VisitaJob) error {
	if s.err != nil {
		return s.err
	}
	s.jobs = append(s.jobs, job)
	return nil
}

func visitasRouter(enq worker.VisitaEnqueuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewVisitasHandler(enq)
	r.POST("/v1/visitas", h.Registrar)
	return r
}

func postVisita(r *gin.Engine, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/visitas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent/1.0")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func visitorCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "visitor_id" {
			return c
		}
	}
	return nil
}

func TestRegistrarVisita_NovoVisitante(t *testing.T) {
	enq := &stubEnqueuer{}
	r := visitasRouter(enq)

	w := postVisita(r, `{"pagina":"/"}`, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	cookie := visitorCookie(t, w)
	assert.NotNil(t, cookie, "first visit must set the visitor cookie")
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)

	assert.Len(t, enq.jobs, 1)
	assert.Equal(t, cookie.Value, enq.jobs[0].VisitanteID)
	assert.Equal(t, "/", enq.jobs[0].Pagina)
	assert.Equal(t, "test-agent/1.0", enq.jobs[0].UserAgent)
}

func TestRegistrarVisita_VisitanteRecorrente(t *testing.T) {
	enq := &stubEnqueuer{}
	r := visitasRouter(enq)
	id := uuid.NewString()

	w := postVisita(r, `{"pagina":"/produtos"}`, &http.Cookie{Name: "visitor_id", Value: id})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, visitorCookie(t, w), "an existing cookie must not be reissued")
	assert.Equal(t, id, enq.jobs[0].VisitanteID)
}

func TestRegistrarVisita_CookieInvalido_Regenerado(t *testing.T) {
	enq := &stubEnqueuer{}
	r := visitasRouter(enq)

	w := postVisita(r, `{"pagina":"/"}`, &http.Cookie{Name: "visitor_id", Value: "nao-e-uuid"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := visitorCookie(t, w)
	assert.NotNil(t, cookie)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
}

func TestRegistrarVisita_CorpoInvalido_Silencioso(t *testing.T) {
	// Malformed or empty beacons drop silently; the storefront must never
	// see a beacon error.
	enq := &stubEnqueuer{}
	r := visitasRouter(enq)

	assert.Equal(t, http.StatusNoContent, postVisita(r, `{not json`, nil).Code)
	assert.Equal(t, http.StatusNoContent, postVisita(r, `{}`, nil).Code)
	assert.Empty(t, enq.jobs)
}

func TestRegistrarVisita_FilaIndisponivel_Silencioso(t *testing.T) {
	enq := &stubEnqueuer{err: errors.New("connection refused")}
	r := visitasRouter(enq)

	w := postVisita(r, `{"pagina":"/"}`, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegistrarVisita_Referrer(t *testing.T) {
	enq := &stubEnqueuer{}
	r := visitasRouter(enq)

	postVisita(r, `{"pagina":"/","referrer":"https://instagram.com"}`, nil)
	assert.Len(t, enq.jobs, 1)
	assert.NotNil(t, enq.jobs[0].Referrer)
	assert.Equal(t, "https://instagram.com", *enq.jobs[0].Referrer)
}
