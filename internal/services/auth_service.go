package services

import (
	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// authService handles registration, login and profile lookups.
type authService struct {
	users *repos.UserRepo
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(users *repos.UserRepo) AuthServicer {
	return &authService{users: users}
}

// Register creates a new active user with a bcrypt-hashed password. Username
// and email must both be unused.
func (s *authService) Register(email, username, fullName, password string) (*models.User, error) {
	if _, exists := s.users.ByUsername(username); exists {
		return nil, apperrors.ErrDuplicateUsername
	}
	if _, exists := s.users.ByEmail(email); exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		FullName:       fullName,
		HashedPassword: string(hash),
		IsActive:       true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

// Login verifies the credentials and returns the user. Invalid username and
// invalid password are indistinguishable to the caller.
func (s *authService) Login(username, password string) (*models.User, error) {
	user, found := s.users.ByUsername(username)
	if !found {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	return user, nil
}

// GetProfile returns the user with the given id.
func (s *authService) GetProfile(userID int64) (*models.User, error) {
	user, found := s.users.ByID(userID)
	if !found {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
