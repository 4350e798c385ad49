package dto

import "github.com/shopspring/decimal"

// CatalogoFilter is bound from the query string of GET /v1/catalogo.
// Both filters compose with logical AND.
type CatalogoFilter struct {
	CategoriaID string `form:"categoria_id" validate:"omitempty,uuid"`
	Busca       string `form:"busca"`
}

type CategoriaCatalogo struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Slug      string  `json:"slug"`
	Descricao *string `json:"descricao"`
	Icone     string  `json:"icone"`
}

type ProdutoCatalogo struct {
	ID          string           `json:"id"`
	Nome        string           `json:"nome"`
	Descricao   *string          `json:"descricao"`
	Preco       *decimal.Decimal `json:"preco"` // nil = "Consultar"
	ImagemURL   *string          `json:"imagem_url"`
	CategoriaID *string          `json:"categoria_id"`
	// Categoria is the display label; "Cosmético" when the reference
	// is missing or dangling.
	Categoria   string `json:"categoria"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// CatalogoResponse carries TotalSemFiltro so the storefront can tell an
// empty catalog ("nenhum produto cadastrado") apart from an empty filter
// result ("nenhum produto encontrado").
type CatalogoResponse struct {
	Categorias     []CategoriaCatalogo `json:"categorias"`
	Produtos       []ProdutoCatalogo   `json:"produtos"`
	TotalSemFiltro int                 `json:"total_sem_filtro"`
}
