package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"task-calendar/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingKey   = errors.New("jwt secret key is required")
)

// Claims is the JWT payload carrying the caller identity.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager verifies HS256 tokens signed with the shared secret.
type Manager struct {
	secretKey []byte
	now       func() time.Time
}

// New creates a Manager.
func New(secretKey string) (*Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	return &Manager{secretKey: []byte(secretKey), now: time.Now}, nil
}

// Verify parses token and returns the scope it carries.
func (m *Manager) Verify(token string) (model.Scope, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{UserID: claims.UserID, Username: claims.Username}, nil
}
