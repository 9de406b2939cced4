package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitimprove/internal/domain"
)

type userService struct {
	users     domain.UserRepository
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	jwtExpiry time.Duration
	clock     domain.Clock
}

// NewUserService creates a UserService with the given repository and auth adapters.
func NewUserService(
	users domain.UserRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	jwtExpiry time.Duration,
	clock domain.Clock,
) domain.UserService {
	return &userService{
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		jwtExpiry: jwtExpiry,
		clock:     clock,
	}
}

func (s *userService) SignUp(ctx context.Context, email, password, name, lastName string, role domain.Role) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.InvalidState("email is required")
	}
	if len(password) < 8 {
		return nil, domain.InvalidState("password must be at least 8 characters")
	}
	if !role.Valid() {
		return nil, domain.InvalidState("role must be user or coach")
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	user := domain.NewUser(email, name, lastName, role, now, now)
	user.Salt = salt
	user.PasswordHash = hash
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) LogIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.InvalidState("invalid email or password")
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.InvalidState("invalid email or password")
	}

	token, err := s.issuer.Issue(user.ID, user.Email, user.Role, s.jwtExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = s.clock.Now()
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("User not found")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
