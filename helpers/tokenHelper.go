package helpers

import (
	"errors"
	"fmt"

	jwt "github.com/dgrijalva/jwt-go"
)

// SignedDetails are the claims carried by bearer tokens. Tokens are issued
// elsewhere; this service only verifies them.
type SignedDetails struct {
	Email  string
	UserID string
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("the token is invalid")

// ValidateToken checks an HS256 token against secret, including expiry.
func ValidateToken(signedToken, secret string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateToken signs claims with secret. Used by tests and local tooling.
func GenerateToken(claims SignedDetails, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(secret))
}
