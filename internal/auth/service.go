// Package auth implements the admin credential check and password-change
// validation. There is no user table and no session layer: credentials are
// compared per request against the values loaded into Config at startup.
package auth

import (
	"errors"

	"github.com/eventgallery/service/internal/config"
)

// minPasswordLength is the minimum accepted length for a new password.
const minPasswordLength = 6

// ErrOldPasswordIncorrect is returned when the supplied old password does
// not match the configured one.
var ErrOldPasswordIncorrect = errors.New("old password is incorrect")

// ErrConfirmationMismatch is returned when newPassword and confirmPassword differ.
var ErrConfirmationMismatch = errors.New("password confirmation does not match")

// ErrPasswordTooShort is returned when the new password is shorter than
// minPasswordLength characters.
var ErrPasswordTooShort = errors.New("new password is too short")

// Service contains the credential-check business logic.
type Service struct {
	cfg *config.Config
}

// NewService creates a new auth Service bound to the immutable config.
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// VerifyCredentials compares username and password against the configured
// admin credentials. Exact, case-sensitive match; no hashing, no lockout,
// no timing mitigation. A deliberate weakness of the admin surface, kept
// rather than silently hardened.
func (s *Service) VerifyCredentials(username, password string) bool {
	return username == s.cfg.AdminUsername && password == s.cfg.AdminPassword
}

// ValidatePasswordChange applies the password-change rules in order and
// returns the first failure. A nil return means the request is valid.
//
// Validation is the whole operation: the configured password is immutable
// for the process lifetime, so nothing is persisted and a later
// VerifyCredentials still requires the old password.
func (s *Service) ValidatePasswordChange(oldPassword, newPassword, confirmPassword string) error {
	if oldPassword != s.cfg.AdminPassword {
		return ErrOldPasswordIncorrect
	}
	if newPassword != confirmPassword {
		return ErrConfirmationMismatch
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
