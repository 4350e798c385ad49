package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies catalog products. Slug selects the display icon on
// the public site (see service.IconePorSlug).
type Categoria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	Descricao *string
	Ordem     int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Categoria) TableName() string { return "categorias" }
