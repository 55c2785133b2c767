package models

import "time"

type Produto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Categoria  string  `gorm:"size:50;not null" json:"categoria"`
	Secao      string  `gorm:"size:50;not null" json:"secao"`
	Preco      float64 `gorm:"not null" json:"preco"`
	Disponivel bool    `gorm:"not null" json:"disponivel"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
