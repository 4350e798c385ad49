package model

import (
	"time"

	"github.com/google/uuid"
)

// PapelAdmin grants access to the admin panel. Entitlement is row
// existence: a user is admin iff at least one row with this papel exists.
const PapelAdmin = "admin"

// PapelUsuario is one role membership row. A user may hold zero or more.
type PapelUsuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usuario_papel"`
	Papel     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_usuario_papel"`
	CreatedAt time.Time
}

func (PapelUsuario) TableName() string { return "papeis_usuario" }
