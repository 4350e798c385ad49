package service

import (
	"context"
	"sort"
	"time"

	"clamoresul/internal/dto"
	"clamoresul/internal/model"
	"clamoresul/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DashboardService aggregates visits and sales for the admin dashboard.
// Every call recomputes from freshly fetched rows; there is no caching and
// no incremental update.
type DashboardService interface {
	// Computar aggregates over [de, ate] where ate is already extended
	// to end-of-day by the caller.
	Computar(ctx context.Context, de, ate time.Time) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	visitas    repository.VisitaRepository
	vendas     repository.VendaRepository
	produtos   repository.ProdutoRepository
	categorias repository.CategoriaRepository
}

func NewDashboardService(
	visitas repository.VisitaRepository,
	vendas repository.VendaRepository,
	produtos repository.ProdutoRepository,
	categorias repository.CategoriaRepository,
) DashboardService {
	return &dashboardService{visitas: visitas, vendas: vendas, produtos: produtos, categorias: categorias}
}

const diaFmt = "2006-01-02"

func (s *dashboardService) Computar(ctx context.Context, de, ate time.Time) (*dto.DashboardResponse, error) {
	// Fan out the four reads; all-or-nothing — partial results are never
	// used, and the first error cancels the rest.
	var (
		visitas    []model.Visita
		vendas     []model.Venda
		produtos   []model.Produto
		categorias []model.Categoria
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitas, err = s.visitas.ListarPorPeriodo(gctx, de, ate)
		return err
	})
	g.Go(func() error {
		var err error
		vendas, err = s.vendas.ListarPorPeriodo(gctx, de, ate)
		return err
	})
	g.Go(func() error {
		var err error
		produtos, err = s.produtos.ListarTodos(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categorias, err = s.categorias.Listar(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	unicos := make(map[uuid.UUID]struct{}, len(visitas))
	visitasPorDia := make(map[string]int64)
	for _, v := range visitas {
		unicos[v.VisitanteID] = struct{}{}
		visitasPorDia[v.CreatedAt.Format(diaFmt)]++
	}

	faturamento := decimal.Zero
	faturamentoPorDia := make(map[string]decimal.Decimal)
	for _, v := range vendas {
		faturamento = faturamento.Add(v.Total)
		dia := v.DataVenda.Format(diaFmt)
		faturamentoPorDia[dia] = faturamentoPorDia[dia].Add(v.Total)
	}

	resp := &dto.DashboardResponse{
		De:  de.Format(diaFmt),
		Ate: ate.Format(diaFmt),
		Stats: dto.DashboardStats{
			TotalVisitas:     int64(len(visitas)),
			VisitantesUnicos: int64(len(unicos)),
			TotalVendas:      int64(len(vendas)),
			FaturamentoTotal: faturamento,
			TotalProdutos:    int64(len(produtos)),
		},
		VisitasPorDia:     serieVisitas(visitasPorDia),
		FaturamentoPorDia: serieFaturamento(faturamentoPorDia),
		Vendas:            make([]dto.VendaResponse, 0, len(vendas)),
	}

	resp.VendasPorCategoria, resp.FaturamentoSemCategoria = distribuicaoPorCategoria(vendas, produtos, categorias)

	for i := range vendas {
		resp.Vendas = append(resp.Vendas, *mapVenda(&vendas[i]))
	}
	return resp, nil
}

func serieVisitas(porDia map[string]int64) []dto.VisitasDia {
	out := make([]dto.VisitasDia, 0, len(porDia))
	for dia, n := range porDia {
		out = append(out, dto.VisitasDia{Data: dia, Visitas: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data < out[j].Data })
	return out
}

func serieFaturamento(porDia map[string]decimal.Decimal) []dto.FaturamentoDia {
	out := make([]dto.FaturamentoDia, 0, len(porDia))
	for dia, total := range porDia {
		out = append(out, dto.FaturamentoDia{Data: dia, Faturamento: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data < out[j].Data })
	return out
}

// distribuicaoPorCategoria sums sale totals per category via the
// product→category membership. Sales whose product is nil or resolves to no
// category contribute to the returned residue, never to a slice; categories
// with zero matched revenue are omitted. Slice order follows the category
// list (ordem ASC).
func distribuicaoPorCategoria(vendas []model.Venda, produtos []model.Produto, categorias []model.Categoria) ([]dto.FatiaCategoria, decimal.Decimal) {
	categoriaExiste := make(map[uuid.UUID]bool, len(categorias))
	for _, c := range categorias {
		categoriaExiste[c.ID] = true
	}
	categoriaPorProduto := make(map[uuid.UUID]uuid.UUID, len(produtos))
	for _, p := range produtos {
		// Dangling references count as "no category".
		if p.CategoriaID != nil && categoriaExiste[*p.CategoriaID] {
			categoriaPorProduto[p.ID] = *p.CategoriaID
		}
	}

	porCategoria := make(map[uuid.UUID]decimal.Decimal, len(categorias))
	semCategoria := decimal.Zero
	for _, v := range vendas {
		if v.ProdutoID == nil {
			semCategoria = semCategoria.Add(v.Total)
			continue
		}
		catID, ok := categoriaPorProduto[*v.ProdutoID]
		if !ok {
			semCategoria = semCategoria.Add(v.Total)
			continue
		}
		porCategoria[catID] = porCategoria[catID].Add(v.Total)
	}

	fatias := make([]dto.FatiaCategoria, 0, len(porCategoria))
	for _, c := range categorias {
		total, ok := porCategoria[c.ID]
		if !ok || total.IsZero() {
			continue
		}
		fatias = append(fatias, dto.FatiaCategoria{Categoria: c.Nome, Valor: total})
	}
	return fatias, semCategoria
}
