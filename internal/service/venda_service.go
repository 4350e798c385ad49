package service

import (
	"context"
	"time"

	"clamoresul/internal/dto"
	"clamoresul/internal/model"
	"clamoresul/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendaService interface {
	Registrar(ctx context.Context, req dto.CriarVendaRequest) (*dto.VendaResponse, error)
}

type vendaService struct {
	repo repository.VendaRepository
}

func NewVendaService(repo repository.VendaRepository) VendaService {
	return &vendaService{repo: repo}
}

// Registrar logs a sale. Total = Quantidade × PrecoUnitario is computed
// here, once, with decimal arithmetic (3 × 10.50 persists exactly 31.50)
// and stored; the store never recomputes it.
func (s *vendaService) Registrar(ctx context.Context, req dto.CriarVendaRequest) (*dto.VendaResponse, error) {
	preco := *req.PrecoUnitario
	v := &model.Venda{
		Cliente:       req.Cliente,
		Quantidade:    req.Quantidade,
		PrecoUnitario: preco,
		Total:         preco.Mul(decimal.NewFromInt(int64(req.Quantidade))),
		Status:        model.StatusVendaConcluida,
		Observacoes:   req.Observacoes,
		DataVenda:     time.Now(),
	}
	if req.ProdutoID != nil {
		id, err := uuid.Parse(*req.ProdutoID)
		if err == nil {
			v.ProdutoID = &id
		}
	}
	if err := s.repo.Criar(ctx, v); err != nil {
		return nil, err
	}
	return mapVenda(v), nil
}

func mapVenda(v *model.Venda) *dto.VendaResponse {
	out := &dto.VendaResponse{
		ID:            v.ID.String(),
		Cliente:       v.Cliente,
		Quantidade:    v.Quantidade,
		PrecoUnitario: v.PrecoUnitario,
		Total:         v.Total,
		Status:        v.Status,
		Observacoes:   v.Observacoes,
		DataVenda:     v.DataVenda.Format(time.RFC3339),
	}
	if v.ProdutoID != nil {
		id := v.ProdutoID.String()
		out.ProdutoID = &id
	}
	return out
}
