package ports

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
)

var (
	// ErrDuplicateEmail is returned by UserRepository when the email is already registered.
	ErrDuplicateEmail = errors.New("User already exists")

	// ErrDuplicateTrackingNumber is returned by ParcelRepository.Add when the tracking number is taken.
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")

	// ErrPasswordMismatch is returned by PasswordHasher.Compare for a wrong password.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidToken is returned by TokenService.Verify for any unusable token.
	ErrInvalidToken = errors.New("token is invalid")
)

// PasswordHasher hashes and checks passwords. Plain passwords never leave the core.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns ErrPasswordMismatch when password does not produce hash.
	Compare(hash, password string) error
}

// TokenService issues and verifies bearer tokens carrying a user id.
type TokenService interface {
	Issue(userID kernel.UUID) (string, error)

	// Verify returns the user id carried by token, or an error wrapping ErrInvalidToken.
	Verify(token string) (kernel.UUID, error)
}
