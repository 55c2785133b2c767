package models

import "time"

// AuditLog registra mutações feitas por admins no back office.
type AuditLog struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UsuarioID *uint `gorm:"index" json:"usuario_id,omitempty"`

	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50;not null" json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
