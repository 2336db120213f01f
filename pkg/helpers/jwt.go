package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogapi/internal/domain/entity"
)

// JWTManager issues and validates session tokens signed with a symmetric key.
type JWTManager struct {
	Key []byte
	TTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(key string, ttl time.Duration) *JWTManager {
	m := &JWTManager{Key: []byte(key), TTL: ttl}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

// Claims carries the identity and role claims of an authenticated user.
// Subject is the login email.
type Claims struct {
	UserID int64    `json:"uid"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Issue builds a signed token from the user's identity and roles.
func (m *JWTManager) Issue(u *entity.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		UserID: u.ID,
		Name:   u.Name,
		Roles:  u.RoleNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Key)
	return s, exp, err
}

// Parse validates the token signature and expiry and returns its claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
