package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticCredentialsVerify(t *testing.T) {
	creds := StaticCredentials{Username: "admin", Password: "password"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "admin", "password", true},
		{"wrong password", "admin", "nope", false},
		{"wrong username", "root", "password", false},
		{"both wrong", "root", "nope", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := creds.Verify(tc.username, tc.password); got != tc.want {
				t.Errorf("Verify(%q, %q) = %v, want %v", tc.username, tc.password, got, tc.want)
			}
		})
	}
}

func TestBcryptCredentialsVerify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	creds := BcryptCredentials{Username: "admin", PasswordHash: string(hash)}

	if !creds.Verify("admin", "s3cret") {
		t.Error("expected correct pair to verify")
	}
	if creds.Verify("admin", "wrong") {
		t.Error("expected wrong password to fail")
	}
	if creds.Verify("root", "s3cret") {
		t.Error("expected wrong username to fail")
	}
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionManager(newMockKV(), time.Hour)
	svc := NewAuthService(StaticCredentials{Username: "admin", Password: "password"}, sessions)

	token, err := svc.Login(ctx, "admin", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty string")
	}

	session, err := svc.Check(ctx, token)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if session == nil || session.Username != "admin" {
		t.Fatalf("expected session for admin, got %+v", session)
	}
}

func TestAuthServiceLoginInvalid(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	sessions := NewSessionManager(kv, time.Hour)
	svc := NewAuthService(StaticCredentials{Username: "admin", Password: "password"}, sessions)

	_, err := svc.Login(ctx, "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(kv.entries) != 0 {
		t.Fatal("no session must be created on failed login")
	}
}

func TestAuthServiceCheckUnknownToken(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionManager(newMockKV(), time.Hour)
	svc := NewAuthService(StaticCredentials{Username: "admin", Password: "password"}, sessions)

	session, err := svc.Check(ctx, "no-such-token")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session, got %+v", session)
	}
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionManager(newMockKV(), time.Hour)
	svc := NewAuthService(StaticCredentials{Username: "admin", Password: "password"}, sessions)

	token, err := svc.Login(ctx, "admin", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	session, err := svc.Check(ctx, token)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if session != nil {
		t.Fatal("expected session to be gone after logout")
	}

	// Logging out again is not an error.
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
}
