package dto

import "github.com/shopspring/decimal"

// DashboardFilter is bound from the query string of GET /v1/admin/dashboard.
// Dates are calendar dates (YYYY-MM-DD); "ate" is inclusive end-of-day.
type DashboardFilter struct {
	De  string `form:"de"`
	Ate string `form:"ate"`
}

type DashboardStats struct {
	TotalVisitas     int64           `json:"total_visitas"`
	VisitantesUnicos int64           `json:"visitantes_unicos"`
	TotalVendas      int64           `json:"total_vendas"`
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
	TotalProdutos    int64           `json:"total_produtos"`
}

type VisitasDia struct {
	Data    string `json:"data"` // YYYY-MM-DD
	Visitas int64  `json:"visitas"`
}

type FaturamentoDia struct {
	Data        string          `json:"data"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

type FatiaCategoria struct {
	Categoria string          `json:"categoria"`
	Valor     decimal.Decimal `json:"valor"`
}

type DashboardResponse struct {
	De                 string           `json:"de"`
	Ate                string           `json:"ate"`
	Stats              DashboardStats   `json:"stats"`
	VisitasPorDia      []VisitasDia     `json:"visitas_por_dia"`
	FaturamentoPorDia  []FaturamentoDia `json:"faturamento_por_dia"`
	VendasPorCategoria []FatiaCategoria `json:"vendas_por_categoria"`
	// FaturamentoSemCategoria is revenue from sales whose product has no
	// resolvable category; counted in Stats.FaturamentoTotal but absent
	// from VendasPorCategoria.
	FaturamentoSemCategoria decimal.Decimal `json:"faturamento_sem_categoria"`
	Vendas                  []VendaResponse `json:"vendas"`
}
