package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/pkg/security"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) []domain.User {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) *domain.User {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.User)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) *domain.User {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.User)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) *domain.User {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.User)
}

func (m *MockUserRepository) Add(ctx context.Context, u *domain.User) bool {
	args := m.Called(ctx, u)
	return args.Bool(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func TestRegisterSuccess(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(nil)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil)
	users.On("Add", mock.Anything, mock.AnythingOfType("*domain.User")).Return(true)

	svc := NewService(users, new(MockTokenIssuer))

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1", domain.RoleGuest)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.False(t, u.RegistrationDate.IsZero())
	users.AssertExpectations(t)
}

func TestRegisterDuplicateUsernameAnyCase(t *testing.T) {
	existing := &domain.User{ID: "u-1", Username: "alice"}
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "Alice").Return(existing)

	svc := NewService(users, new(MockTokenIssuer))

	_, err := svc.Register(context.Background(), "Alice", "other@example.com", "secret1", domain.RoleGuest)
	assert.ErrorIs(t, err, ErrUserExists)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(new(MockUserRepository), new(MockTokenIssuer))
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		password string
		role     domain.UserRole
	}{
		{"short username", "al", "a@example.com", "secret1", domain.RoleGuest},
		{"bad username chars", "al ice!", "a@example.com", "secret1", domain.RoleGuest},
		{"bad email", "alice", "not-an-email", "secret1", domain.RoleGuest},
		{"short password", "alice", "a@example.com", "12345", domain.RoleGuest},
		{"unknown role", "alice", "a@example.com", "secret1", domain.UserRole("SUPERUSER")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.email, tc.password, tc.role)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	stored := &domain.User{ID: "u-1", Username: "alice", PasswordHash: hash, Role: domain.RoleGuest}

	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "ALICE").Return(stored)

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", *stored).Return("token-123", nil)

	svc := NewService(users, tokens)

	res, err := svc.Login(context.Background(), "ALICE", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, "token-123", res.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	stored := &domain.User{ID: "u-1", Username: "alice", PasswordHash: hash}

	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(stored)

	svc := NewService(users, new(MockTokenIssuer))

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil)

	svc := NewService(users, new(MockTokenIssuer))

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
