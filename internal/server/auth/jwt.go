// Package auth implements the two security primitives of the server:
// signed session tokens (HS256 JWT) and bcrypt password digests.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the statement a token makes about its bearer: the standard
// time claims plus the username the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken issues a signed token for username with IssuedAt set to now
// and ExpiresAt set to now plus validityDuration.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies tokenString and returns the username claim.
// The signature is checked before any claim is trusted; failures map onto
// the common sentinels:
//
//	common.ErrTokenMalformed — the string cannot be parsed as a JWT
//	common.ErrTokenExpired   — signature fine, lifetime over
//	common.ErrInvalidToken   — bad signature, wrong algorithm, empty claim
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrInvalidToken
		}
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
