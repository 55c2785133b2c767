package dto

import (
	"time"

	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type ClientePublic struct {
	ID             uint          `json:"id"`
	CPF            string        `json:"cpf"`
	Telefone       string        `json:"telefone,omitempty"`
	Endereco       string        `json:"endereco,omitempty"`
	DataCriacao    time.Time     `json:"data_criacao"`
	DataNascimento *time.Time    `json:"data_nascimento,omitempty"`
	Usuario        UsuarioPublic `json:"usuario"`
}

func NewClientePublic(c models.Cliente) ClientePublic {
	return ClientePublic{
		ID:             c.ID,
		CPF:            c.CPF,
		Telefone:       c.Telefone,
		Endereco:       c.Endereco,
		DataCriacao:    c.DataCriacao,
		DataNascimento: c.DataNascimento,
		Usuario:        NewUsuarioPublic(c.Usuario),
	}
}

func NewClientePublicList(clientes []models.Cliente) []ClientePublic {
	out := make([]ClientePublic, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, NewClientePublic(c))
	}
	return out
}
