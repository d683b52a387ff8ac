package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/storynest/storynest/internal/config"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 2
	minPasswordLength = 5
)

// authService is the concrete implementation of AuthService. It hashes
// passwords with bcrypt before they reach persistence and verifies them in
// constant time at login. The plaintext password never leaves this service.
type authService struct {
	// userRepository is the credential store used to create and look up users.
	userRepository store.UserRepository

	// profileRepository provisions the default author profile at registration.
	profileRepository store.ProfileRepository

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with the hashing cost from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		profileRepository: profileRepository,
		bcryptCost:        cfg.BcryptCost,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// It validates the submitted credentials, hashes the password with bcrypt,
// persists the user, and provisions the default author profile.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrValidationUsernameTooShort / ErrValidationPasswordTooShort when
//     the credentials fail validation.
//   - A wrapped storage error if persistence fails (a taken username
//     surfaces as store.ErrUsernameTaken — the UNIQUE constraint is the
//     authority, not a pre-check).
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(credentials); err != nil {
		log.Error().Str("username", credentials.Username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, credentials.Username, string(hash))
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if _, err := a.profileRepository.CreateProfile(ctx, registeredUser.ID); err != nil {
		log.Err(err).Int64("user_id", registeredUser.ID).Msg("profile creation ended with error")
		return models.User{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// against the submitted password. An unknown username and a wrong password
// are deliberately collapsed into the same [ErrInvalidCredentials] so that
// login responses never reveal which of the two was wrong.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// UserByID retrieves the account a resolved session belongs to. Lookup
// failures pass through unchanged; a missing row surfaces as
// store.ErrUserNotFound.
func (a *authService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	return foundUser, nil
}

func validateCredentials(credentials models.Credentials) error {
	if len(credentials.Username) < minUsernameLength {
		return ErrValidationUsernameTooShort
	}
	if len(credentials.Password) < minPasswordLength {
		return ErrValidationPasswordTooShort
	}

	return nil
}
