package services

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService authenticates the dashboard admin. The insights backend
// has a single admin account configured through the environment; there is no
// admin table.
type AdminAuthService struct{}

var adminAuthService = &AdminAuthService{}

// GetAdminAuthService returns the shared auth service
func GetAdminAuthService() *AdminAuthService {
	return adminAuthService
}

// EnvAdmin is the admin account loaded from the environment
type EnvAdmin struct {
	Email        string
	Name         string
	PasswordHash string
}

// LoadEnvAdmin reads the configured admin account. Errors when the account
// is not fully configured so login fails closed.
func (s *AdminAuthService) LoadEnvAdmin() (*EnvAdmin, error) {
	admin := &EnvAdmin{
		Email:        os.Getenv("ADMIN_EMAIL"),
		Name:         os.Getenv("ADMIN_NAME"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if admin.Email == "" || admin.PasswordHash == "" {
		return nil, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set")
	}
	if admin.Name == "" {
		admin.Name = "Dashboard Admin"
	}
	return admin, nil
}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}
