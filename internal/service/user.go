package service

import (
	"fmt"

	"go.uber.org/zap"

	"shopcart/internal/models"
	"shopcart/internal/repository"
)

type UserService interface {
	Profile(email string) (*models.Profile, error)
	EditProfile(email, fullName, preferredName string) error
	DeleteUser(email string) error
}

type userService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{users: users, logger: logger}
}

// Profile looks the user up by the email from verified token claims, never
// by a client-supplied identifier.
func (s *userService) Profile(email string) (*models.Profile, error) {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &models.Profile{
		FullName:      user.FullName,
		PreferredName: user.PreferredName,
		Email:         user.Email,
	}, nil
}

// EditProfile applies a partial update; empty fields keep their stored
// value. Only the display names are editable, email and password hash are
// untouchable here.
func (s *userService) EditProfile(email, fullName, preferredName string) error {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if fullName == "" {
		fullName = user.FullName
	}
	if preferredName == "" {
		preferredName = user.PreferredName
	}

	if err := s.users.UpdateProfile(user.ID, fullName, preferredName); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// DeleteUser removes the account; deleting an already-removed account
// succeeds.
func (s *userService) DeleteUser(email string) error {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil
	}

	if err := s.users.DeleteUser(user.ID); err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User deleted.", zap.String("email", user.Email))
	return nil
}
