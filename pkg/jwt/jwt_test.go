package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ong-esperanza/donaciones-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "donaciones-api-test"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := jwt.NewManager(testSecret, time.Hour, testIssuer)

	tok, err := m.Generate(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Parse(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestManager_TokenExpirado_RetornaError(t *testing.T) {
	m := jwt.NewManager(testSecret, -time.Minute, testIssuer)

	tok, err := m.Generate(42, "admin")
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestManager_SecretIncorrecto_RetornaError(t *testing.T) {
	m := jwt.NewManager(testSecret, time.Hour, testIssuer)
	otro := jwt.NewManager("otro-secret-completamente-distinto", time.Hour, testIssuer)

	tok, err := m.Generate(42, "admin")
	require.NoError(t, err)

	_, err = otro.Parse(tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestManager_TokenMalformado_RetornaError(t *testing.T) {
	m := jwt.NewManager(testSecret, time.Hour, testIssuer)

	_, err := m.Parse("token.invalido.aqui")
	assert.Error(t, err)
}
