package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dicehaven/backend/internal/config"
	"github.com/dicehaven/backend/internal/dto"
	"github.com/dicehaven/backend/internal/models"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthService(newTestDB(t), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "gandalf",
		Email:    "gandalf@example.com",
		Password: "you-shall-not-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("registration did not return a token pair")
	}

	if _, err := svc.Register(&dto.RegisterRequest{
		Username: "gandalf2",
		Email:    "gandalf@example.com",
		Password: "another-password",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}

	login, err := svc.Login(&dto.LoginRequest{Email: "gandalf@example.com", Password: "you-shall-not-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.AccessToken == "" {
		t.Error("login did not return an access token")
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "gandalf@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Register(&dto.RegisterRequest{
		Username: "troll",
		Email:    "troll@example.com",
		Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.db.Model(&models.User{}).
		Where("email = ?", "troll@example.com").
		Update("status", models.UserStatusSuspended).Error; err != nil {
		t.Fatalf("suspend user: %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "troll@example.com", Password: "hunter2hunter2"}); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("suspended login: got %v, want ErrAccountDisabled", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "bilbo",
		Email:    "bilbo@example.com",
		Password: "there-and-back",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.RefreshToken == resp.RefreshToken {
		t.Error("refresh must rotate the refresh token")
	}

	// The spent token is revoked and cannot be replayed.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("replayed refresh token: got %v, want ErrInvalidToken", err)
	}
}
