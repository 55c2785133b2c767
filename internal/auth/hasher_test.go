package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := auth.HashPassword("senha-secreta")
	require.NoError(t, err)

	assert.NotEqual(t, "senha-secreta", hash)
	assert.True(t, auth.VerifyPassword("senha-secreta", hash))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("senha-secreta")
	require.NoError(t, err)

	assert.False(t, auth.VerifyPassword("outra-senha", hash))
}

func TestVerifyPassword_MalformedHashFailsClosed(t *testing.T) {
	assert.False(t, auth.VerifyPassword("qualquer", "nao-e-um-hash-bcrypt"))
	assert.False(t, auth.VerifyPassword("qualquer", ""))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := auth.HashPassword("mesma-senha")
	require.NoError(t, err)
	h2, err := auth.HashPassword("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
