package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// Issued tokens are valid for 12 hours.
const tokenTTL = 12 * time.Hour

// ErrUnauthorized is returned for any token that fails verification.
var ErrUnauthorized = errors.New("unauthorized access")

// GenerateJWT signs an arbitrary claims object with the shared secret and
// sets the fixed expiry window. The claims shape is not validated.
func GenerateJWT(user map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range user {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// VerifyJWT parses and validates a token and returns the decoded claims.
// Missing, malformed, expired and wrongly signed tokens all fail with
// ErrUnauthorized.
func VerifyJWT(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
