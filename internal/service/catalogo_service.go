package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"clamoresul/internal/dto"
	"clamoresul/internal/model"
	"clamoresul/internal/repository"

	"github.com/google/uuid"
)

// ─── Category icons ──────────────────────────────────────────────────────────

// Icone identifies the storefront icon for a category. The mapping is
// closed: unknown slugs get IconePadrao.
type Icone string

const (
	IconeTratamento  Icone = "sparkles"
	IconeColoracao   Icone = "palette"
	IconeFinalizacao Icone = "wind"
	IconePadrao      Icone = "package"
)

// IconePorSlug maps a category slug to its icon.
func IconePorSlug(slug string) Icone {
	switch slug {
	case "tratamento":
		return IconeTratamento
	case "coloracao":
		return IconeColoracao
	case "finalizacao":
		return IconeFinalizacao
	case "acessorios":
		return IconePadrao
	default:
		return IconePadrao
	}
}

// CategoriaPadrao labels products whose category reference is missing or
// dangling.
const CategoriaPadrao = "Cosmético"

// ─── Service ─────────────────────────────────────────────────────────────────

type CatalogoService interface {
	Carregar(ctx context.Context, filtro dto.CatalogoFilter) (*dto.CatalogoResponse, error)
}

type catalogoService struct {
	repo           repository.CatalogoRepository
	whatsAppNumero string
}

func NewCatalogoService(repo repository.CatalogoRepository, whatsAppNumero string) CatalogoService {
	return &catalogoService{repo: repo, whatsAppNumero: whatsAppNumero}
}

func (s *catalogoService) Carregar(ctx context.Context, filtro dto.CatalogoFilter) (*dto.CatalogoResponse, error) {
	categorias, err := s.repo.Categorias(ctx)
	if err != nil {
		return nil, err
	}
	produtos, err := s.repo.ProdutosAtivos(ctx)
	if err != nil {
		return nil, err
	}

	var categoriaID *uuid.UUID
	if filtro.CategoriaID != "" {
		id, err := uuid.Parse(filtro.CategoriaID)
		if err == nil {
			categoriaID = &id
		}
	}
	filtrados := FiltrarProdutos(produtos, categoriaID, filtro.Busca)

	nomePorCategoria := make(map[uuid.UUID]string, len(categorias))
	for _, c := range categorias {
		nomePorCategoria[c.ID] = c.Nome
	}

	resp := &dto.CatalogoResponse{
		Categorias:     make([]dto.CategoriaCatalogo, 0, len(categorias)),
		Produtos:       make([]dto.ProdutoCatalogo, 0, len(filtrados)),
		TotalSemFiltro: len(produtos),
	}
	for _, c := range categorias {
		resp.Categorias = append(resp.Categorias, dto.CategoriaCatalogo{
			ID:        c.ID.String(),
			Nome:      c.Nome,
			Slug:      c.Slug,
			Descricao: c.Descricao,
			Icone:     string(IconePorSlug(c.Slug)),
		})
	}
	for _, p := range filtrados {
		resp.Produtos = append(resp.Produtos, s.mapProduto(p, nomePorCategoria))
	}
	return resp, nil
}

func (s *catalogoService) mapProduto(p model.Produto, nomePorCategoria map[uuid.UUID]string) dto.ProdutoCatalogo {
	out := dto.ProdutoCatalogo{
		ID:          p.ID.String(),
		Nome:        p.Nome,
		Descricao:   p.Descricao,
		Preco:       p.Preco,
		ImagemURL:   p.ImagemURL,
		Categoria:   CategoriaPadrao,
		WhatsAppURL: s.whatsAppURL(p.Nome),
	}
	if p.CategoriaID != nil {
		id := p.CategoriaID.String()
		out.CategoriaID = &id
		if nome, ok := nomePorCategoria[*p.CategoriaID]; ok {
			out.Categoria = nome
		}
	}
	return out
}

// whatsAppURL builds the pre-filled contact link for a product.
func (s *catalogoService) whatsAppURL(nomeProduto string) string {
	msg := "Olá, tenho interesse no produto: " + nomeProduto
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumero, url.QueryEscape(msg))
}

// FiltrarProdutos keeps a product iff (categoriaID is nil OR the product
// belongs to it) AND (busca is empty OR the name contains busca,
// case-folded). Pure substring match, no ranking; input order preserved.
func FiltrarProdutos(produtos []model.Produto, categoriaID *uuid.UUID, busca string) []model.Produto {
	busca = strings.ToLower(busca)
	out := make([]model.Produto, 0, len(produtos))
	for _, p := range produtos {
		if categoriaID != nil && (p.CategoriaID == nil || *p.CategoriaID != *categoriaID) {
			continue
		}
		if busca != "" && !strings.Contains(strings.ToLower(p.Nome), busca) {
			continue
		}
		out = append(out, p)
	}
	return out
}
