package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

// AdminAuth checks credentials for the admin HTTP surface against a single
// configured user and bcrypt password hash.
type AdminAuth struct {
	username     string
	passwordHash []byte
}

func NewAdminAuth(username, passwordHash string) *AdminAuth {
	return &AdminAuth{
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

// HashPassword produces a hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AdminAuth) Verify(username, password string) error {
	// Run bcrypt even for an unknown user so both paths cost the same.
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	if !userOK || passErr != nil || len(a.passwordHash) == 0 {
		return ErrInvalidCreds
	}
	return nil
}
