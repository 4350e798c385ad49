package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome        string           `json:"nome"         validate:"required,min=2,max=120"`
	Descricao   *string          `json:"descricao"`
	Preco       *decimal.Decimal `json:"preco"        validate:"omitempty,min=0"`
	ImagemURL   *string          `json:"imagem_url"   validate:"omitempty,url"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Ordem       int              `json:"ordem"        validate:"min=0"`
}

// AtualizarProdutoRequest is a partial update: nil fields are left untouched.
type AtualizarProdutoRequest struct {
	Nome        *string          `json:"nome"         validate:"omitempty,min=2,max=120"`
	Descricao   *string          `json:"descricao"`
	Preco       *decimal.Decimal `json:"preco"        validate:"omitempty,min=0"`
	ImagemURL   *string          `json:"imagem_url"   validate:"omitempty,url"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Ativo       *bool            `json:"ativo"`
	Ordem       *int             `json:"ordem"        validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID          string           `json:"id"`
	Nome        string           `json:"nome"`
	Descricao   *string          `json:"descricao"`
	Preco       *decimal.Decimal `json:"preco"`
	ImagemURL   *string          `json:"imagem_url"`
	CategoriaID *string          `json:"categoria_id"`
	Ativo       bool             `json:"ativo"`
	Ordem       int              `json:"ordem"`
	CreatedAt   string           `json:"created_at"`
}
