package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid password")

// Service guards the admin console with its single shared password.
// The plain password from configuration is hashed once at startup so
// only the hash lives in memory afterwards.
type Service struct {
	passwordHash []byte
}

func NewService(password string) (*Service, error) {
	if password == "" {
		return nil, errors.New("admin password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{passwordHash: hash}, nil
}

// Login checks the shared password and issues a session token.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return GenerateAdminToken()
}
