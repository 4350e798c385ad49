package model

import (
	"time"

	"github.com/google/uuid"
)

// Visita is one page view on the public site. Append-only: rows are never
// updated or deleted. VisitanteID is a cookie-persisted anonymous id, not
// an authentication identity.
type Visita struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VisitanteID uuid.UUID `gorm:"type:uuid;index;not null"`
	Pagina      string    `gorm:"not null"`
	Referrer    *string
	UserAgent   string
	CreatedAt   time.Time `gorm:"index"`
}

func (Visita) TableName() string { return "visitas_site" }
