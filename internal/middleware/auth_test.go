package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clamoresul/internal/middleware"
	"clamoresul/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// ── Stub ──────────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	admins   map[uuid.UUID]bool
	papelErr error
}

func (r *stubUsuarioRepo) Criar(context.Context, *model.Usuario) error { return nil }

func (r *stubUsuarioRepo) ObterPorEmail(context.Context, string) (*model.Usuario, error) {
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) ObterPorID(context.Context, uuid.UUID) (*model.Usuario, error) {
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) AtribuirPapel(context.Context, *model.PapelUsuario) error { return nil }

func (r *stubUsuarioRepo) TemPapel(_ context.Context, usuarioID uuid.UUID, papel string) (bool, error) {
	if r.papelErr != nil {
		return false, r.papelErr
	}
	return papel == model.PapelAdmin && r.admins[usuarioID], nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func signToken(t *testing.T, userID string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID, "email": "admin@clamoresul.com.br",
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func adminTestRouter(repo *stubUsuarioRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.JWTAuth(testSecret), func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	admin := r.Group("/admin", middleware.JWTAuth(testSecret), middleware.RequireAdmin(repo))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

// ── Tests: JWTAuth ────────────────────────────────────────────────────────────

func TestJWTAuth_SemToken(t *testing.T) {
	r := adminTestRouter(&stubUsuarioRepo{})
	w := doGet(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_TokenValido(t *testing.T) {
	r := adminTestRouter(&stubUsuarioRepo{})
	id := uuid.New().String()
	w := doGet(r, "/protected", signToken(t, id, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	r := adminTestRouter(&stubUsuarioRepo{})
	w := doGet(r, "/protected", signToken(t, uuid.New().String(), -time.Second))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_AssinaturaErrada(t *testing.T) {
	claims := jwt.MapClaims{"user_id": uuid.New().String(), "exp": time.Now().Add(time.Hour).Unix()}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, _ := tok.SignedString([]byte("outro_segredo_completamente_diferente"))

	r := adminTestRouter(&stubUsuarioRepo{})
	w := doGet(r, "/protected", s)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ── Tests: RequireAdmin ───────────────────────────────────────────────────────

func TestRequireAdmin_ComPapel(t *testing.T) {
	id := uuid.New()
	repo := &stubUsuarioRepo{admins: map[uuid.UUID]bool{id: true}}
	r := adminTestRouter(repo)

	w := doGet(r, "/admin/ping", signToken(t, id.String(), time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_SemPapel(t *testing.T) {
	// Token is valid, but the role row is gone: revocation takes effect on
	// the very next request.
	repo := &stubUsuarioRepo{admins: map[uuid.UUID]bool{}}
	r := adminTestRouter(repo)

	w := doGet(r, "/admin/ping", signToken(t, uuid.New().String(), time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_ErroNoLookup_FalhaFechado(t *testing.T) {
	id := uuid.New()
	repo := &stubUsuarioRepo{
		admins:   map[uuid.UUID]bool{id: true},
		papelErr: errors.New("store unavailable"),
	}
	r := adminTestRouter(repo)

	w := doGet(r, "/admin/ping", signToken(t, id.String(), time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
