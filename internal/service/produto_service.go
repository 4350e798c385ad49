package service

import (
	"context"
	"errors"
	"time"

	"clamoresul/internal/dto"
	"clamoresul/internal/model"
	"clamoresul/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProdutoNaoEncontrado = errors.New("produto não encontrado")

// ProdutoService implements the admin product CRUD. Validation is shallow
// (required fields and types only); callers re-fetch the list after every
// mutation instead of merging optimistically.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		ImagemURL: req.ImagemURL,
		Ativo:     true,
		Ordem:     req.Ordem,
	}
	if req.CategoriaID != nil {
		id, err := uuid.Parse(*req.CategoriaID)
		if err == nil {
			p.CategoriaID = &id
		}
	}
	if err := s.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	return mapProduto(p), nil
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		resp[i] = *mapProduto(&produtos[i])
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Descricao != nil {
		p.Descricao = req.Descricao
	}
	if req.Preco != nil {
		p.Preco = req.Preco
	}
	if req.ImagemURL != nil {
		p.ImagemURL = req.ImagemURL
	}
	if req.CategoriaID != nil {
		if *req.CategoriaID == "" {
			p.CategoriaID = nil
		} else if cid, err := uuid.Parse(*req.CategoriaID); err == nil {
			p.CategoriaID = &cid
		}
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}
	if req.Ordem != nil {
		p.Ordem = *req.Ordem
	}

	if err := s.repo.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	return mapProduto(p), nil
}

func (s *produtoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObterPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProdutoNaoEncontrado
		}
		return err
	}
	return s.repo.Excluir(ctx, id)
}

func mapProduto(p *model.Produto) *dto.ProdutoResponse {
	out := &dto.ProdutoResponse{
		ID:        p.ID.String(),
		Nome:      p.Nome,
		Descricao: p.Descricao,
		Preco:     p.Preco,
		ImagemURL: p.ImagemURL,
		Ativo:     p.Ativo,
		Ordem:     p.Ordem,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.CategoriaID != nil {
		id := p.CategoriaID.String()
		out.CategoriaID = &id
	}
	return out
}
