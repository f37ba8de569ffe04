package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT(map[string]interface{}{
		"email": "student@singerx.app",
		"name":  "Sam Lee",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "student@singerx.app", claims["email"])
	assert.Equal(t, "Sam Lee", claims["name"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(12*time.Hour).Unix(), exp, 5)
}

func TestVerifyJWTExpired(t *testing.T) {
	JwtKey = []byte("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "student@singerx.app",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	tokenStr, err := expired.SignedString(JwtKey)
	require.NoError(t, err)

	_, err = VerifyJWT(tokenStr)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyJWTWrongKey(t *testing.T) {
	JwtKey = []byte("test-secret")
	token, err := GenerateJWT(map[string]interface{}{"email": "student@singerx.app"})
	require.NoError(t, err)

	JwtKey = []byte("a-different-secret")
	_, err = VerifyJWT(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyJWTMalformed(t *testing.T) {
	JwtKey = []byte("test-secret")

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := VerifyJWT(tokenStr)
		assert.ErrorIs(t, err, ErrUnauthorized, "token %q should not verify", tokenStr)
	}
}
