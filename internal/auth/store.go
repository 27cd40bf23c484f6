package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/database"
)

// New creates a new UserStore.
func New(db *sql.DB) UserStore {
	return &store{
		db: db,
	}
}

// ValidateUser checks the username, password and role of a new account.
func ValidateUser(username, password string, role Role) error {
	if n := len(strings.TrimSpace(username)); n < 3 || n > 50 {
		return fmt.Errorf("%w: username must be 3 to 50 characters", ErrInvalidUser)
	}
	if n := len(password); n < 6 || n > 200 {
		return fmt.Errorf("%w: password must be 6 to 200 characters", ErrInvalidUser)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidUser, role)
	}
	return nil
}

func (s *store) CreateUser(ctx context.Context, username, password string, role Role) (User, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUser(username, password, role); err != nil {
		return User{}, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, created_at) VALUES (?, ?, ?, ?)",
		username, hash, string(role), now.Unix())
	if err != nil {
		if database.IsUniqueViolation(err) {
			return User{}, fmt.Errorf("user %s: %w", username, ErrUserExists)
		}
		log.Error("Failed to create user", "error", err, "username", username)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	log.Info("Created user", "userID", id, "username", username, "role", role)
	return User{ID: id, Username: username, Role: role, CreatedAt: now, PasswordHash: hash}, nil
}

func (s *store) GetUser(ctx context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		u       User
		role    string
		created int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, created_at FROM users WHERE username = ?", username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, fmt.Errorf("user %s: %w", username, ErrUserNotFound)
		}
		log.Error("Failed to query user", "error", err, "username", username)
		return User{}, fmt.Errorf("database error: %w", err)
	}
	u.Role = Role(role)
	u.CreatedAt = time.Unix(created, 0).UTC()
	return u, nil
}

func (s *store) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.GetUser(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !VerifyPassword(password, u.PasswordHash) {
		log.Warn("Failed login attempt", "username", username)
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
