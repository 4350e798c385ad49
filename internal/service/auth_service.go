package service

import (
	"context"
	"errors"
	"time"

	"clamoresul/internal/config"
	"clamoresul/internal/dto"
	"clamoresul/internal/model"
	"clamoresul/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors so handlers can map 401 vs 403.
var (
	// ErrCredenciaisInvalidas never reveals whether the email exists.
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	// ErrAcessoNegado: authenticated but without the admin role. No token
	// is issued, so the non-admin user never holds a session.
	ErrAcessoNegado = errors.New("acesso negado: você não tem permissão de administrador")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login authenticates credentials, then gates on the admin role. The role
// check runs only after a successful password check and fails closed: any
// store error during the lookup is treated as "not admin".
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.ObterPorEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	admin, err := s.repo.TemPapel(ctx, user.ID, model.PapelAdmin)
	if err != nil || !admin {
		return nil, ErrAcessoNegado
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Usuario: dto.UsuarioResponse{
			ID:    user.ID.String(),
			Nome:  user.Nome,
			Email: user.Email,
		},
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
