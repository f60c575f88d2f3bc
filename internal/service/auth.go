package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopcart/internal/models"
	"shopcart/internal/password"
	"shopcart/internal/repository"
	"shopcart/internal/token"
)

var ( // Define custom errors
	ErrEmailTaken         = errors.New("user exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("user email or password is incorrect")
)

type AuthService interface {
	Register(fullName, preferredName, email, plaintext string) (*models.User, error)
	Login(email, plaintext string) (string, error) // Returns a signed bearer token
	ChangePassword(email, currentPassword, newPassword string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *token.Service, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// NormalizeEmail fixes the email uniqueness policy: case-insensitive,
// surrounding whitespace ignored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(fullName, preferredName, email, plaintext string) (*models.User, error) {
	email = NormalizeEmail(email)

	existing, err := s.users.GetUserByEmail(email)
	if err != nil {
		s.logger.Error("Failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := password.Hash(plaintext)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:            uuid.New(),
		Email:         email,
		FullName:      fullName,
		PreferredName: preferredName,
		PasswordHash:  passwordHash,
	}

	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent registration; the unique
			// constraint is the authoritative check.
			return nil, ErrEmailTaken
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(email, plaintext string) (string, error) {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	// Unknown email and wrong password produce the same outcome so the
	// response never reveals which factor was wrong.
	if user == nil || !password.Verify(plaintext, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(user.FullName, user.PreferredName, user.Email)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.String("email", user.Email))
	return tokenString, nil
}

func (s *authService) ChangePassword(email, currentPassword, newPassword string) error {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !password.Verify(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	passwordHash, err := password.Hash(newPassword)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(user.ID, passwordHash); err != nil {
		s.logger.Error("Failed to update password", zap.Error(err))
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
