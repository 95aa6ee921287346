package service

import (
	"errors"
	"testing"
	"time"

	"mbo_backend/internal/config"
	"mbo_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	cfg.Auth.Username = "admin"
	cfg.Auth.PasswordHash = string(hash)
	cfg.Auth.JWTSecret = "test-secret-test-secret-test-sec"
	cfg.Auth.ExpireTime = time.Hour
	return NewAuthService(cfg)
}

func TestAuthDisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(&config.Config{})
	if svc.Enabled() {
		t.Error("Enabled = true without a password hash")
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse")

	token, err := svc.Login("admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := util.ParseJWT(token, "test-secret-test-secret-test-sec")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse")

	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, util.ErrLoginFailed) {
		t.Errorf("wrong password error = %v, want ErrLoginFailed", err)
	}
	if _, err := svc.Login("nobody", "correct-horse"); !errors.Is(err, util.ErrLoginFailed) {
		t.Errorf("wrong username error = %v, want ErrLoginFailed", err)
	}
}
