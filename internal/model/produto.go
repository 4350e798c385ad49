package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a catalog item. Preco nil means "price on request" — the
// storefront renders "Consultar" instead of a value. Hiding a product from
// the storefront is done by clearing Ativo; the admin panel may also
// hard-delete the row.
type Produto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string    `gorm:"index;not null"`
	Descricao   *string
	Preco       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ImagemURL   *string
	CategoriaID *uuid.UUID `gorm:"type:uuid;index"`
	Ativo       bool       `gorm:"not null;default:true"`
	Ordem       int        `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Weak reference: a dangling CategoriaID is tolerated and rendered
	// with a fallback label on the storefront.
	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:SET NULL"`
}

func (Produto) TableName() string { return "produtos" }
