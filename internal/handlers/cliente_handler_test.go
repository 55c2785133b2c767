package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

func TestClienteCreate_CreatesUsuarioAndCliente(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)

	w := doJSON(t, r, "POST", "/clients/", tokenFor(t, "admin@lu-estilo.com"), map[string]any{
		"nome":     "Joana",
		"email":    "joana@lu-estilo.com",
		"senha":    "senha123",
		"cpf":      "12345678901",
		"telefone": "11999990000",
		"endereco": "rua A",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID      uint   `json:"id"`
		CPF     string `json:"cpf"`
		Usuario struct {
			Email string `json:"email"`
		} `json:"usuario"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "12345678901", resp.CPF)
	assert.Equal(t, "joana@lu-estilo.com", resp.Usuario.Email)

	var usuario models.Usuario
	require.NoError(t, db.Where("email = ?", "joana@lu-estilo.com").First(&usuario).Error)
	assert.NotEqual(t, "senha123", usuario.Senha)
}

func TestClienteCreate_InvalidCPF(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)

	w := doJSON(t, r, "POST", "/clients/", tokenFor(t, "admin@lu-estilo.com"), map[string]any{
		"nome":  "Joana",
		"email": "joana@lu-estilo.com",
		"senha": "senha123",
		"cpf":   "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClienteCreate_DuplicateEmail(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	seedUsuario(t, db, "Joana", "joana@lu-estilo.com", "senha123", models.RoleUser)

	w := doJSON(t, r, "POST", "/clients/", tokenFor(t, "admin@lu-estilo.com"), map[string]any{
		"nome":  "Joana",
		"email": "joana@lu-estilo.com",
		"senha": "senha123",
		"cpf":   "12345678901",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email_already_used")
}

func TestClienteUpdate_PartialKeepsEndereco(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	dona := seedUsuario(t, db, "Joana", "joana@lu-estilo.com", "senha123", models.RoleUser)
	cliente := models.Cliente{UsuarioID: dona.ID, CPF: "12345678901", Telefone: "11999990000", Endereco: "rua A"}
	require.NoError(t, db.Create(&cliente).Error)

	w := doJSON(t, r, "PUT", "/clients/1", token, map[string]any{
		"telefone": "11888880000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Cliente
	require.NoError(t, db.First(&updated, cliente.ID).Error)
	assert.Equal(t, "11888880000", updated.Telefone)
	assert.Equal(t, "rua A", updated.Endereco)
}

func TestClienteList_FilterByEmail(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Maria", "maria@lu-estilo.com", "senha123", models.RoleUser)

	u1 := seedUsuario(t, db, "Joana", "joana@lu-estilo.com", "senha123", models.RoleUser)
	u2 := seedUsuario(t, db, "Paula", "paula@lu-estilo.com", "senha123", models.RoleUser)
	require.NoError(t, db.Create(&models.Cliente{UsuarioID: u1.ID, CPF: "11111111111"}).Error)
	require.NoError(t, db.Create(&models.Cliente{UsuarioID: u2.ID, CPF: "22222222222"}).Error)

	w := doJSON(t, r, "GET", "/clients/?email=paula@lu-estilo.com", tokenFor(t, "maria@lu-estilo.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var clientes []struct {
		CPF string `json:"cpf"`
	}
	decode(t, w, &clientes)
	require.Len(t, clientes, 1)
	assert.Equal(t, "22222222222", clientes[0].CPF)
}

func TestClienteDelete_ThenGetNotFound(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	dona := seedUsuario(t, db, "Joana", "joana@lu-estilo.com", "senha123", models.RoleUser)
	require.NoError(t, db.Create(&models.Cliente{UsuarioID: dona.ID, CPF: "12345678901"}).Error)

	del := doJSON(t, r, "DELETE", "/clients/1", token, nil)
	require.Equal(t, http.StatusOK, del.Code)

	get := doJSON(t, r, "GET", "/clients/1", token, nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestClienteWrite_RequiresAdmin(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Comum", "comum@lu-estilo.com", "senha123", models.RoleUser)
	token := tokenFor(t, "comum@lu-estilo.com")

	w := doJSON(t, r, "POST", "/clients/", token, map[string]any{
		"nome": "Joana", "email": "joana@lu-estilo.com", "senha": "senha123", "cpf": "12345678901",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// leitura continua liberada para autenticados
	list := doJSON(t, r, "GET", "/clients/", token, nil)
	assert.Equal(t, http.StatusOK, list.Code)
}
