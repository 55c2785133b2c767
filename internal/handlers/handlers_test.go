package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
	"github.com/Max-Antonio/lu-estilo-API/internal/config"
	dbpkg "github.com/Max-Antonio/lu-estilo-API/internal/db"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
	"github.com/Max-Antonio/lu-estilo-API/internal/routes"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       testSecret,
		AccessTokenTTL:  15 * time.Minute,
		LoginTokenTTL:   24 * time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

// setupTestDB abre um sqlite em memória exclusivo do teste para evitar
// colisão entre testes rodando em paralelo.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r, db, testConfig())
	return r, db
}

func seedUsuario(t *testing.T, db *gorm.DB, nome, email, senha string, role models.Role) *models.Usuario {
	t.Helper()

	hash, err := auth.HashPassword(senha)
	require.NoError(t, err)

	u := &models.Usuario{Nome: nome, Email: email, Senha: hash, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()

	token, err := auth.NewTokenService(testSecret, 0, 0).CreateAccessToken(email, 0)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
