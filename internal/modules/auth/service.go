package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/pkg/security"
	"github.com/vuyischool/Airbnb-app/internal/pkg/validator"
)

const minPasswordLen = 6

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a new user. Username and email uniqueness is
// case-insensitive and checked here only; later writes do not re-verify it.
func (s *Service) Register(ctx context.Context, username, email, password string, role domain.UserRole) (*domain.User, error) {
	if !usernameRe.MatchString(username) {
		return nil, ErrValidation
	}
	if len(password) < minPasswordLen {
		return nil, ErrValidation
	}
	if !role.Valid() {
		return nil, ErrValidation
	}

	user := domain.User{
		Username:         username,
		Email:            email,
		Role:             role,
		RegistrationDate: time.Now(),
	}
	if errs := validator.Validate(user); errs != nil {
		return nil, ErrValidation
	}

	if s.users.GetByUsername(ctx, username) != nil || s.users.GetByEmail(ctx, email) != nil {
		return nil, ErrUserExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if !s.users.Add(ctx, &user) {
		return nil, ErrStorage
	}
	return &user, nil
}

// Login matches the username case-insensitively and verifies the password
// against the stored hash. On success it returns the user together with a
// signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user := s.users.GetByUsername(ctx, username)
	if user == nil || !security.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) GetAllUsers(ctx context.Context) []domain.User {
	return s.users.GetAll(ctx)
}

func (s *Service) GetUserByID(ctx context.Context, id string) *domain.User {
	return s.users.GetByID(ctx, id)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) *domain.User {
	return s.users.GetByUsername(ctx, username)
}
