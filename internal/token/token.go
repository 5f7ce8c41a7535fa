package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the identity embedded in a signed token. Role defaults to
// "user" when the claim is absent.
type Claims struct {
	ID    uint
	Name  string
	Role  string
	Email string
}

// Sign issues an HS256 token carrying the identity claims with the given
// time-to-live.
func Sign(claims Claims, secret string, ttl time.Duration) (string, error) {
	now := time.Now()

	mc := jwt.MapClaims{
		"sub":  float64(claims.ID),
		"name": claims.Name,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	if claims.Role != "" {
		mc["role"] = claims.Role
	}
	if claims.Email != "" {
		mc["email"] = claims.Email
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a signed token. It returns ErrExpiredToken
// for elapsed expiry and ErrInvalidToken for every other failure.
func Verify(tokenString, secret string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{ID: uint(sub), Role: "user"}
	if name, ok := mc["name"].(string); ok {
		claims.Name = name
	}
	if role, ok := mc["role"].(string); ok && role != "" {
		claims.Role = role
	}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}

	return claims, nil
}
