package dto

import "github.com/Max-Antonio/lu-estilo-API/internal/models"

// UsuarioPublic é a projeção de Usuario segura para a API: o hash da
// senha nunca sai daqui.
type UsuarioPublic struct {
	ID    uint        `json:"id"`
	Nome  string      `json:"nome"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func NewUsuarioPublic(u models.Usuario) UsuarioPublic {
	return UsuarioPublic{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
		Role:  u.Role,
	}
}

func NewUsuarioPublicList(usuarios []models.Usuario) []UsuarioPublic {
	out := make([]UsuarioPublic, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, NewUsuarioPublic(u))
	}
	return out
}
