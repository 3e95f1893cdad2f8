package auth

import (
	"errors"
	"testing"
)

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	service, err := NewService("dhafood2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	service, err := NewService("dhafood2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := service.Login("dhafood2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateAdminToken(token); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}
}

func TestPasswordIsHashedInMemory(t *testing.T) {
	service, err := NewService("dhafood2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(service.passwordHash) == "dhafood2025" {
		t.Fatal("password kept in plain text")
	}
}

func TestNewServiceRejectsEmptyPassword(t *testing.T) {
	if _, err := NewService(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	if err := ValidateAdminToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
