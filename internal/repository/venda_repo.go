package repository

import (
	"context"
	"time"

	"clamoresul/internal/model"

	"gorm.io/gorm"
)

type VendaRepository interface {
	Criar(ctx context.Context, v *model.Venda) error
	// ListarPorPeriodo returns sales with data_venda in [de, ate],
	// newest first. Callers pass ate already extended to end-of-day.
	ListarPorPeriodo(ctx context.Context, de, ate time.Time) ([]model.Venda, error)
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) Criar(ctx context.Context, v *model.Venda) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) ListarPorPeriodo(ctx context.Context, de, ate time.Time) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Where("data_venda >= ? AND data_venda <= ?", de, ate).
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}
