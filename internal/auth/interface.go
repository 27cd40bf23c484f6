package auth

import "context"

type UserStore interface {
	CreateUser(ctx context.Context, username, password string, role Role) (User, error)
	GetUser(ctx context.Context, username string) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
}
