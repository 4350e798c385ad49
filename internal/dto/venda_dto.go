package dto

import "github.com/shopspring/decimal"

type CriarVendaRequest struct {
	Cliente    *string `json:"cliente"`
	ProdutoID  *string `json:"produto_id" validate:"omitempty,uuid"`
	Quantidade int     `json:"quantidade" validate:"required,min=1"`
	// PrecoUnitario must be present and non-negative. The pointer makes an
	// omitted field distinguishable from an explicit zero, which is a valid
	// price (free sample).
	PrecoUnitario *decimal.Decimal `json:"preco_unitario" validate:"required,min=0"`
	Observacoes   *string          `json:"observacoes"`
}

type VendaResponse struct {
	ID            string          `json:"id"`
	Cliente       *string         `json:"cliente"`
	ProdutoID     *string         `json:"produto_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Observacoes   *string         `json:"observacoes"`
	DataVenda     string          `json:"data_venda"`
}
