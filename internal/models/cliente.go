package models

import "time"

// Cliente é o perfil de compra vinculado a exatamente um Usuario.
type Cliente struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UsuarioID uint    `gorm:"index;not null" json:"usuario_id"`
	Usuario   Usuario `json:"usuario"`

	CPF      string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Telefone string `gorm:"size:20" json:"telefone"`
	Endereco string `gorm:"size:255" json:"endereco"`

	// DataCriacao é definida na criação e nunca mais alterada.
	DataCriacao    time.Time  `gorm:"autoCreateTime" json:"data_criacao"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty"`
}
