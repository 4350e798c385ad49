package repository

import (
	"context"

	"clamoresul/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *model.Produto) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	// ListarAtivos feeds the storefront: ativo = true, ordered by ordem.
	ListarAtivos(ctx context.Context) ([]model.Produto, error)
	// ListarTodos feeds the admin panel: every product, newest first.
	ListarTodos(ctx context.Context) ([]model.Produto, error)
	Contar(ctx context.Context) (int64, error)
	Atualizar(ctx context.Context, p *model.Produto) error
	// Excluir removes the row permanently. Hiding a product from the
	// storefront is done via Ativo, not here.
	Excluir(ctx context.Context, id uuid.UUID) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Criar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) ListarAtivos(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Where("ativo = true").Order("ordem ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) ListarTodos(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Contar(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).Count(&total).Error
	return total, err
}

func (r *produtoRepo) Atualizar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Excluir(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, "id = ?", id).Error
}
