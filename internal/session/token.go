package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"billed-fe-svc/internal/models"
)

// Claims is the payload of the session token issued by the bills API
type Claims struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Decoder verifies session tokens
type Decoder struct {
	secret []byte
}

// NewDecoder returns a decoder for HS256 tokens signed with secret
func NewDecoder(secret string) *Decoder {
	return &Decoder{secret: []byte(secret)}
}

// Decode verifies token and returns the session it describes
func (d *Decoder) Decode(token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("session: unexpected signing method")
		}
		return d.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("session: invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("session: invalid claims")
	}
	if claims.Email == "" {
		return nil, errors.New("session: email claim is required")
	}

	return &models.Session{
		Type:  claims.Type,
		Email: claims.Email,
		Token: token,
	}, nil
}

// Issue signs a session token. The bills API issues the real ones;
// cmd/devtoken uses this to sign in against a local setup.
func (d *Decoder) Issue(sess models.Session, ttl time.Duration) (string, error) {
	if sess.Email == "" {
		return "", errors.New("session: email is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now().UTC()
	claims := Claims{
		Type:  sess.Type,
		Email: sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
}
