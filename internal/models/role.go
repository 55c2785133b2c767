package models

// Role é o nível de acesso de um usuário. Admins têm acesso total,
// users têm acesso somente de leitura às rotas protegidas.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}
