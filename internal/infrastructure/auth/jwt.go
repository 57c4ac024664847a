package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken     = errors.New("invalid token")
)

// Claims carried in the access token. The subject is the actor id used
// for all ownership checks; Email feeds the payment gateway, which
// requires a payer email on every charge.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 bearer tokens issued by the identity service.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
