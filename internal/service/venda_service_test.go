package service_test

import (
	"context"
	"testing"
	"time"

	"clamoresul/internal/dto"
	"clamoresul/internal/model"
	"clamoresul/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubVendaRepo struct {
	criadas []*model.Venda
}

func (r *stubVendaRepo) Criar(_ context.Context, v *model.Venda) error {
	v.ID = uuid.New()
	r.criadas = append(r.criadas, v)
	return nil
}

func (r *stubVendaRepo) ListarPorPeriodo(_ context.Context, de, ate time.Time) ([]model.Venda, error) {
	out := make([]model.Venda, 0, len(r.criadas))
	for _, v := range r.criadas {
		if !v.DataVenda.Before(de) && !v.DataVenda.After(ate) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestRegistrarVenda_TotalExato(t *testing.T) {
	repo := &stubVendaRepo{}
	svc := service.NewVendaService(repo)

	resp, err := svc.Registrar(context.Background(), dto.CriarVendaRequest{
		Quantidade:    3,
		PrecoUnitario: decPtr(decimal.New(1050, -2)), // 10.50
	})
	assert.NoError(t, err)
	// Decimal arithmetic: 3 × 10.50 is exactly 31.50, never 31.499999…
	assert.Equal(t, "31.5", resp.Total.String())
	assert.True(t, resp.Total.Equal(decimal.New(3150, -2)))
}

func TestRegistrarVenda_StatusPadrao(t *testing.T) {
	repo := &stubVendaRepo{}
	svc := service.NewVendaService(repo)

	resp, err := svc.Registrar(context.Background(), dto.CriarVendaRequest{
		Quantidade:    1,
		PrecoUnitario: decPtr(decimal.New(9990, -2)),
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusVendaConcluida, resp.Status)
	assert.NotEmpty(t, resp.DataVenda)
}

func TestRegistrarVenda_TotalPersistido(t *testing.T) {
	repo := &stubVendaRepo{}
	svc := service.NewVendaService(repo)

	_, err := svc.Registrar(context.Background(), dto.CriarVendaRequest{
		Quantidade:    2,
		PrecoUnitario: decPtr(decimal.New(18990, -2)),
	})
	assert.NoError(t, err)
	assert.Len(t, repo.criadas, 1)
	// The stored row carries the computed total; reads never re-derive it.
	assert.True(t, repo.criadas[0].Total.Equal(decimal.New(37980, -2)))
}

func TestRegistrarVenda_PrecoZero(t *testing.T) {
	// Free sample: zero unit price is a valid sale.
	repo := &stubVendaRepo{}
	svc := service.NewVendaService(repo)

	resp, err := svc.Registrar(context.Background(), dto.CriarVendaRequest{
		Quantidade:    5,
		PrecoUnitario: decPtr(decimal.Zero),
	})
	assert.NoError(t, err)
	assert.True(t, resp.Total.IsZero())
}

func TestRegistrarVenda_ProdutoOpcional(t *testing.T) {
	repo := &stubVendaRepo{}
	svc := service.NewVendaService(repo)

	produtoID := uuid.New().String()
	resp, err := svc.Registrar(context.Background(), dto.CriarVendaRequest{
		ProdutoID:     &produtoID,
		Quantidade:    1,
		PrecoUnitario: decPtr(decimal.New(500, -2)),
	})
	assert.NoError(t, err)
	assert.Equal(t, produtoID, *resp.ProdutoID)

	// And without a product reference:
	resp, err = svc.Registrar(context.Background(), dto.CriarVendaRequest{
		Quantidade:    1,
		PrecoUnitario: decPtr(decimal.New(500, -2)),
	})
	assert.NoError(t, err)
	assert.Nil(t, resp.ProdutoID)
}
