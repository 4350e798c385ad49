package handler

import (
	"errors"
	"net/http"

	"clamoresul/internal/apierror"
	"clamoresul/internal/dto"
	"clamoresul/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login POST /v1/auth/login
// 401 for bad credentials, 403 for an authenticated user without the
// admin role (no token is ever issued to them).
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, service.ErrAcessoNegado) {
			status = http.StatusForbidden
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout POST /v1/auth/logout — tokens are stateless; the client discards
// its copy. Kept for surface symmetry with the admin panel.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
