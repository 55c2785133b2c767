package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

func seedProdutos(t *testing.T, db *gorm.DB, categorias ...string) []models.Produto {
	t.Helper()

	produtos := make([]models.Produto, 0, len(categorias))
	for _, cat := range categorias {
		p := models.Produto{Categoria: cat, Secao: "vestuario", Preco: 49.9, Disponivel: true}
		require.NoError(t, db.Create(&p).Error)
		produtos = append(produtos, p)
	}
	return produtos
}

func TestProdutoCreate_RequiresAdmin(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Comum", "comum@lu-estilo.com", "senha123", models.RoleUser)

	w := doJSON(t, r, "POST", "/products/", tokenFor(t, "comum@lu-estilo.com"), map[string]any{
		"categoria": "camisa", "secao": "vestuario", "preco": 49.9, "disponivel": true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProdutoCreateAndGet(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	w := doJSON(t, r, "POST", "/products/", token, map[string]any{
		"categoria": "camisa", "secao": "vestuario", "preco": 49.9, "disponivel": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)
	require.NotZero(t, created.ID)

	// leitura só precisa de sessão, não de admin
	seedUsuario(t, db, "Comum", "comum@lu-estilo.com", "senha123", models.RoleUser)
	get := doJSON(t, r, "GET", "/products/1", tokenFor(t, "comum@lu-estilo.com"), nil)
	assert.Equal(t, http.StatusOK, get.Code)
}

func TestProdutoCreate_DisponivelFalsePersists(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	w := doJSON(t, r, "POST", "/products/", token, map[string]any{
		"categoria": "casaco", "secao": "inverno", "preco": 199.9, "disponivel": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Produto
	require.NoError(t, db.First(&stored, 1).Error)
	assert.False(t, stored.Disponivel)
}

func TestProdutoCreate_DisponivelOmittedDefaultsTrue(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	w := doJSON(t, r, "POST", "/products/", token, map[string]any{
		"categoria": "casaco", "secao": "inverno", "preco": 199.9,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Produto
	require.NoError(t, db.First(&stored, 1).Error)
	assert.True(t, stored.Disponivel)
}

func TestProdutoList_FilterByCategoria(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Maria", "maria@lu-estilo.com", "senha123", models.RoleUser)
	seedProdutos(t, db, "camisa", "saia", "jaqueta", "jaqueta")

	w := doJSON(t, r, "GET", "/products/?categoria=jaqueta", tokenFor(t, "maria@lu-estilo.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var produtos []map[string]any
	decode(t, w, &produtos)
	require.Len(t, produtos, 2)
	for _, p := range produtos {
		assert.Equal(t, "jaqueta", p["categoria"])
	}
}

func TestProdutoList_Pagination(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Maria", "maria@lu-estilo.com", "senha123", models.RoleUser)
	seeded := seedProdutos(t, db, "a", "b", "c", "d", "e")

	w := doJSON(t, r, "GET", "/products/?skip=1&limit=2", tokenFor(t, "maria@lu-estilo.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var produtos []struct {
		ID uint `json:"id"`
	}
	decode(t, w, &produtos)
	require.Len(t, produtos, 2)
	assert.Equal(t, seeded[1].ID, produtos[0].ID)
	assert.Equal(t, seeded[2].ID, produtos[1].ID)
}

func TestProdutoUpdate_PartialLeavesOtherFields(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	p := models.Produto{Categoria: "camisa", Secao: "vestuario", Preco: 49.9, Disponivel: true}
	require.NoError(t, db.Create(&p).Error)

	w := doJSON(t, r, "PUT", "/products/1", token, map[string]any{"preco": 59.9})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Produto
	require.NoError(t, db.First(&updated, p.ID).Error)
	assert.Equal(t, 59.9, updated.Preco)
	assert.Equal(t, "camisa", updated.Categoria)
	assert.Equal(t, "vestuario", updated.Secao)
	assert.True(t, updated.Disponivel)
}

func TestProdutoUpdate_NegativePreco(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)

	p := models.Produto{Categoria: "camisa", Secao: "vestuario", Preco: 49.9}
	require.NoError(t, db.Create(&p).Error)

	w := doJSON(t, r, "PUT", "/products/1", tokenFor(t, "admin@lu-estilo.com"), map[string]any{"preco": -1.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProdutoDelete_ThenGetNotFound(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Admin", "admin@lu-estilo.com", "senha123", models.RoleAdmin)
	token := tokenFor(t, "admin@lu-estilo.com")

	p := models.Produto{Categoria: "camisa", Secao: "vestuario", Preco: 49.9}
	require.NoError(t, db.Create(&p).Error)

	del := doJSON(t, r, "DELETE", "/products/1", token, nil)
	require.Equal(t, http.StatusOK, del.Code)
	assert.Contains(t, del.Body.String(), "detail")

	get := doJSON(t, r, "GET", "/products/1", token, nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestProdutoGet_NotFound(t *testing.T) {
	r, db := setupRouter(t)
	seedUsuario(t, db, "Maria", "maria@lu-estilo.com", "senha123", models.RoleUser)

	w := doJSON(t, r, "GET", "/products/999", tokenFor(t, "maria@lu-estilo.com"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
