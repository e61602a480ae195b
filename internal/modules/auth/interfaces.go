package auth

import (
	"context"

	"github.com/vuyischool/Airbnb-app/internal/domain"
)

// UserRepository is the persisted-user collection the service operates on.
type UserRepository interface {
	GetAll(ctx context.Context) []domain.User
	GetByID(ctx context.Context, id string) *domain.User
	GetByUsername(ctx context.Context, username string) *domain.User
	GetByEmail(ctx context.Context, email string) *domain.User
	Add(ctx context.Context, u *domain.User) bool
}

// TokenIssuer signs session tokens for logged-in users.
type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}
