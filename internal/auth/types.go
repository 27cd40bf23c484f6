package auth

import (
	"database/sql"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Role grants access to routes. Admins may do everything a viewer may.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// Allows reports whether a user with role r may act as required.
func (r Role) Allows(required Role) bool {
	return r == RoleAdmin || r == required
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	PasswordHash string    `json:"-"`
}

// Claims is the JWT payload. The subject is the username.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Token is the response of a successful login.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
