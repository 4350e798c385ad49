package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusVendaConcluida is the status every sale is created with.
const StatusVendaConcluida = "concluida"

// Venda is a manually logged sale. Total is computed as
// Quantidade × PrecoUnitario at creation time and persisted; it is never
// re-derived on read.
type Venda struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Cliente       *string
	ProdutoID     *uuid.UUID      `gorm:"type:uuid;index"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'concluida'"`
	Observacoes   *string
	DataVenda     time.Time `gorm:"index;not null"`
	CreatedAt     time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID;constraint:OnDelete:SET NULL"`
}

func (Venda) TableName() string { return "vendas" }
