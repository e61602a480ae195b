// Package repository provides the typed read/write interface over each
// entity's persisted collection. Every query is a full scan of the backing
// file with in-process filtering; lines that fail to decode are skipped.
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/record"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

type UserRepository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetAll(ctx context.Context) []domain.User {
	lines := r.store.ReadAll(storage.UsersFile)
	users := make([]domain.User, 0, len(lines))
	for _, line := range lines {
		if u, ok := record.DecodeUser(line); ok {
			users = append(users, u)
		}
	}
	return users
}

func (r *UserRepository) GetByID(ctx context.Context, id string) *domain.User {
	for _, u := range r.GetAll(ctx) {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// GetByUsername matches case-insensitively.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) *domain.User {
	for _, u := range r.GetAll(ctx) {
		if strings.EqualFold(u.Username, username) {
			return &u
		}
	}
	return nil
}

// GetByEmail matches case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) *domain.User {
	for _, u := range r.GetAll(ctx) {
		if strings.EqualFold(u.Email, email) {
			return &u
		}
	}
	return nil
}

// Add appends the user, assigning a fresh id when none is set.
// It reports whether the record was persisted.
func (r *UserRepository) Add(ctx context.Context, u *domain.User) bool {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.store.Append(storage.UsersFile, record.EncodeUser(*u))
}

func (r *UserRepository) Update(ctx context.Context, u domain.User) bool {
	return r.store.UpdateByKey(storage.UsersFile, u.ID, record.EncodeUser(u))
}

func (r *UserRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(storage.UsersFile, id)
}
