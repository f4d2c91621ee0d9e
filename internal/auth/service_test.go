package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventgallery/service/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AdminUsername: "admin",
		AdminPassword: "secret123",
	}
}

func TestVerifyCredentials(t *testing.T) {
	svc := NewService(testConfig())

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"exact match", "admin", "secret123", true},
		{"wrong password", "admin", "secret124", false},
		{"wrong username", "root", "secret123", false},
		{"case-sensitive username", "Admin", "secret123", false},
		{"case-sensitive password", "admin", "Secret123", false},
		{"empty credentials", "", "", false},
		{"whitespace not trimmed", "admin ", "secret123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.VerifyCredentials(tt.username, tt.password))
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	svc := NewService(testConfig())

	tests := []struct {
		name    string
		old     string
		new     string
		confirm string
		wantErr error
	}{
		{"valid", "secret123", "hunter22", "hunter22", nil},
		{"exactly six characters", "secret123", "abcdef", "abcdef", nil},
		{"wrong old password", "nope", "hunter22", "hunter22", ErrOldPasswordIncorrect},
		{"confirmation mismatch", "secret123", "hunter22", "hunter23", ErrConfirmationMismatch},
		{"five characters too short", "secret123", "abcde", "abcde", ErrPasswordTooShort},
		{"old checked before confirmation", "nope", "a", "b", ErrOldPasswordIncorrect},
		{"mismatch checked before length", "secret123", "a", "b", ErrConfirmationMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidatePasswordChange(tt.old, tt.new, tt.confirm)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
