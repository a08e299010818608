package visitor

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "ignite_visitor"
	issuer     = "ignite-guild"
	DefaultTTL = 365 * 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid visitor token")
	ErrNoVisitor    = errors.New("no visitor in context")
)

type Claims struct {
	VisitorID string `json:"vid"`
	jwt.RegisteredClaims
}

// Tokens issues and validates the signed cookie that identifies a browser.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if len(secret) < 16 {
		return nil, errors.New("visitor secret must be at least 16 bytes")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}, nil
}

// RandomSecret returns a throwaway signing secret. Cookies signed with it do
// not survive a restart.
func RandomSecret() string {
	return rand.Text() + rand.Text()
}

func (t *Tokens) Generate(visitorID string) (string, error) {
	now := time.Now()
	claims := Claims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   visitorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *Tokens) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.VisitorID); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
