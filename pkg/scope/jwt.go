package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fridge-inventory/internal/model"
)

type jwtManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// New returns an HS256 Manager. A zero ttl produces tokens without expiry.
func New(secret, issuer string, ttl time.Duration) Manager {
	return &jwtManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

func (m *jwtManager) CreateToken(sc model.Scope) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sc.UserID,
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Username: sc.Username,
	}
	if m.ttl != 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *jwtManager) Verify(token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, ErrEmptyToken
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{UserID: c.Subject, Username: c.Username}, nil
}
