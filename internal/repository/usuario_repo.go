package repository

import (
	"context"

	"clamoresul/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for users and their
// role memberships. Services depend on this interface, not on the concrete
// GORM implementation, enabling clean unit testing via stubs.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *model.Usuario) error
	ObterPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	AtribuirPapel(ctx context.Context, p *model.PapelUsuario) error
	// TemPapel reports whether at least one role row with the given papel
	// exists for the user. Errors must be propagated so callers can fail
	// closed.
	TemPapel(ctx context.Context, usuarioID uuid.UUID, papel string) (bool, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Criar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) ObterPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ? AND ativo = true", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) AtribuirPapel(ctx context.Context, p *model.PapelUsuario) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *usuarioRepo) TemPapel(ctx context.Context, usuarioID uuid.UUID, papel string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PapelUsuario{}).
		Where("usuario_id = ? AND papel = ?", usuarioID, papel).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
