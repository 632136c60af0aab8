package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avoronin/ar_shop/internal/apperr"
)

// Service issues and verifies the bearer tokens that gate protected routes.
// It holds no mutable state, only the signing secret and expiry from config.
type Service struct {
	Secret []byte
	TTL    time.Duration
}

func New(secret []byte, ttl time.Duration) *Service {
	return &Service{Secret: secret, TTL: ttl}
}

// Issue signs an access token carrying the user id as its numeric subject.
func (s *Service) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(s.TTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// Parse verifies signature and expiry and returns the numeric user id.
// Every failure mode collapses into the unauthenticated category, the
// caller learns nothing beyond that.
func (s *Service) Parse(raw string) (uint, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return 0, apperr.Unauthenticated("invalid or expired token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.Unauthenticated("invalid token claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, apperr.Unauthenticated("invalid subject claim")
	}

	return uint(sub), nil
}
