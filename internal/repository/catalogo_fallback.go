package repository

import (
	"context"

	"clamoresul/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogoRepository is the read surface of the public storefront.
type CatalogoRepository interface {
	Categorias(ctx context.Context) ([]model.Categoria, error)
	ProdutosAtivos(ctx context.Context) ([]model.Produto, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) Categorias(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("ordem ASC").Find(&list).Error
	return list, err
}

func (r *catalogoRepo) ProdutosAtivos(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Where("ativo = true").Order("ordem ASC").Find(&produtos).Error
	return produtos, err
}

// ─── Fallback decorator ──────────────────────────────────────────────────────

// catalogoComFallback tries the primary store and substitutes a fixed demo
// dataset when it returns zero rows or fails. The storefront is never empty
// and never errors before any real data entry — a presentation safeguard,
// not caching.
type catalogoComFallback struct {
	primary CatalogoRepository
}

func NewCatalogoComFallback(primary CatalogoRepository) CatalogoRepository {
	return &catalogoComFallback{primary: primary}
}

func (r *catalogoComFallback) Categorias(ctx context.Context) ([]model.Categoria, error) {
	list, err := r.primary.Categorias(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catálogo: falha ao carregar categorias, usando demo")
		return CategoriasDemo(), nil
	}
	if len(list) == 0 {
		return CategoriasDemo(), nil
	}
	return list, nil
}

func (r *catalogoComFallback) ProdutosAtivos(ctx context.Context) ([]model.Produto, error) {
	produtos, err := r.primary.ProdutosAtivos(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catálogo: falha ao carregar produtos, usando demo")
		return ProdutosDemo(), nil
	}
	if len(produtos) == 0 {
		return ProdutosDemo(), nil
	}
	return produtos, nil
}

// ─── Demo dataset ────────────────────────────────────────────────────────────

// Fixed ids so demo products can reference demo categories.
var (
	demoCatTratamentoID  = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	demoCatColoracaoID   = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	demoCatFinalizacaoID = uuid.MustParse("00000000-0000-0000-0000-0000000000c3")
)

// CategoriasDemo returns the built-in demo categories shown before any real
// data entry.
func CategoriasDemo() []model.Categoria {
	return []model.Categoria{
		{ID: demoCatTratamentoID, Nome: "Tratamento", Slug: "tratamento", Ordem: 1},
		{ID: demoCatColoracaoID, Nome: "Coloração", Slug: "coloracao", Ordem: 2},
		{ID: demoCatFinalizacaoID, Nome: "Finalização", Slug: "finalizacao", Ordem: 3},
	}
}

// ProdutosDemo returns the built-in demo products.
func ProdutosDemo() []model.Produto {
	return []model.Produto{
		{
			ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000d1"),
			Nome:        "Kit Reconstrução Prime",
			Descricao:   strPtr("Tratamento intensivo para cabelos danificados com queratina pura e óleos essenciais."),
			Preco:       decPtr(decimal.New(18990, -2)),
			ImagemURL:   strPtr("https://images.unsplash.com/photo-1527799822344-429dfa8a810d?auto=format&fit=crop&q=80&w=800"),
			CategoriaID: &demoCatTratamentoID,
			Ativo:       true,
			Ordem:       1,
		},
		{
			ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000d2"),
			Nome:        "Sérum Finalizador Luxo",
			Descricao:   strPtr("Brilho instantâneo e proteção térmica com toque sedoso e aroma sofisticado."),
			Preco:       decPtr(decimal.New(8500, -2)),
			ImagemURL:   strPtr("https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?auto=format&fit=crop&q=80&w=800"),
			CategoriaID: &demoCatFinalizacaoID,
			Ativo:       true,
			Ordem:       2,
		},
		{
			ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000d3"),
			Nome:        "Máscara Color Reflect",
			Descricao:   strPtr("Proteção da cor e nutrição profunda para cabelos coloridos e descoloridos."),
			Preco:       decPtr(decimal.New(12450, -2)),
			ImagemURL:   strPtr("https://images.unsplash.com/photo-1599422315624-c102a061405b?auto=format&fit=crop&q=80&w=800"),
			CategoriaID: &demoCatColoracaoID,
			Ativo:       true,
			Ordem:       3,
		},
	}
}

func strPtr(s string) *string                  { return &s }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
