package repository

import (
	"context"
	"time"

	"clamoresul/internal/model"

	"gorm.io/gorm"
)

// VisitaRepository is append-only plus range reads: visits are never
// updated or deleted.
type VisitaRepository interface {
	Criar(ctx context.Context, v *model.Visita) error
	ListarPorPeriodo(ctx context.Context, de, ate time.Time) ([]model.Visita, error)
}

type visitaRepo struct{ db *gorm.DB }

func NewVisitaRepository(db *gorm.DB) VisitaRepository { return &visitaRepo{db: db} }

func (r *visitaRepo) Criar(ctx context.Context, v *model.Visita) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *visitaRepo) ListarPorPeriodo(ctx context.Context, de, ate time.Time) ([]model.Visita, error) {
	var visitas []model.Visita
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", de, ate).
		Find(&visitas).Error
	return visitas, err
}
