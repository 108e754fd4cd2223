package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerate_ClaimsDeLaAplicacion(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "c-1", "super_admin", "workspace-api", 60)
	require.NoError(t, err)

	claims, err := jwt.ParseClaims(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "c-1", claims.CompanyID)
	assert.Equal(t, "super_admin", claims.Role)
	assert.Equal(t, "workspace-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerate_JTIDistintoPorToken(t *testing.T) {
	a, err := jwt.Generate(secret, "u-1", "", "", "workspace-api", 60)
	require.NoError(t, err)
	b, err := jwt.Generate(secret, "u-1", "", "", "workspace-api", 60)
	require.NoError(t, err)

	ca, err := jwt.ParseClaims(secret, a)
	require.NoError(t, err)
	cb, err := jwt.ParseClaims(secret, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
	assert.Empty(t, ca.CompanyID)
}

func TestParseClaims_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "c-1", "member", "workspace-api", 60)
	require.NoError(t, err)

	_, err = jwt.ParseClaims("otro-secreto", token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParseClaims_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "c-1", "member", "workspace-api", -5)
	require.NoError(t, err)

	_, err = jwt.ParseClaims(secret, token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParseClaims_AlgoritmoNoPermitido(t *testing.T) {
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "u-1",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = jwt.ParseClaims(secret, token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParseClaims_SinUsuario(t *testing.T) {
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = jwt.ParseClaims(secret, token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "", "", "x", 1)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)

	_, err = jwt.ParseClaims("", "abc")
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
