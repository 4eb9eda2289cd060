package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/store"
	"github.com/MKhiriev/echosell-api/internal/utils"
	"github.com/MKhiriev/echosell-api/models"
)

// userService is the concrete implementation of [UserService]. It owns the
// uniqueness invariants (username, email) and password hashing, delegating
// persistence to a [store.UserRepository].
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Uniqueness of username and email is pre-checked before the insert so the
// caller learns which attribute collided; when both collide the username is
// reported. The database unique constraints remain the authoritative
// backstop: a concurrent registration slipping past the pre-check still
// surfaces the same conflict sentinels from the repository.
//
// The plain-text password is bcrypt-hashed before persisting and the digest
// is never echoed outward.
func (s *userService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := s.checkUniqueness(ctx, &user.Username, &user.Email, 0); err != nil {
		return models.User{}, err
	}

	digest, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.HashedPassword = digest

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// checkUniqueness verifies that the given username/email (either may be nil)
// are not already held by a user other than excludeID. Username is checked
// first so it takes priority when both collide.
func (s *userService) checkUniqueness(ctx context.Context, username, email *string, excludeID int64) error {
	if username != nil {
		taken, err := s.userRepository.UsernameExists(ctx, *username, excludeID)
		if err != nil {
			return fmt.Errorf("username uniqueness check failed: %w", err)
		}
		if taken {
			return store.ErrUsernameAlreadyExists
		}
	}

	if email != nil {
		taken, err := s.userRepository.EmailExists(ctx, *email, excludeID)
		if err != nil {
			return fmt.Errorf("email uniqueness check failed: %w", err)
		}
		if taken {
			return store.ErrEmailAlreadyExists
		}
	}

	return nil
}

// Authenticate verifies username+password credentials.
//
// Both an unknown username and a bcrypt mismatch collapse into
// [ErrInvalidCredentials] so the response carries no username-enumeration
// signal. Unexpected repository failures are passed through wrapped.
func (s *userService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", username).Msg("login failed")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(password, foundUser.HashedPassword) {
		log.Error().Str("username", username).Msg("login failed")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// Get retrieves one user by id.
func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

// List returns one page of users (descending id) and the total user count.
func (s *userService) List(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	users, err := s.userRepository.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update applies a partial patch to an existing user.
//
// The target must exist; username/email carried by the patch are re-checked
// for uniqueness excluding the updated account itself. Only the set fields
// of the patch change, and updated_at advances.
func (s *userService) Update(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		return models.User{}, err
	}

	if err := s.checkUniqueness(ctx, patch.Username, patch.Email, id); err != nil {
		return models.User{}, err
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, id, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return models.User{}, err
	}

	return updatedUser, nil
}

// Delete hard-deletes a user by id. Absent ids surface
// [store.ErrUserNotFound].
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.userRepository.DeleteUser(ctx, id)
}
