package app

import (
	"context"
	"crypto/subtle"
	"errors"

	"profileboard/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// CredentialVerifier checks a submitted username/password pair. Injecting it
// lets the credential storage change without touching handler logic.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against a single configured plaintext pair using
// constant-time comparison.
type StaticCredentials struct {
	Username string
	Password string
}

// Verify implements CredentialVerifier.
func (c StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// BcryptCredentials verifies the password against a bcrypt hash so the
// plaintext never has to live in configuration.
type BcryptCredentials struct {
	Username     string
	PasswordHash string
}

// Verify implements CredentialVerifier.
func (c BcryptCredentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// AuthService handles authentication and session management.
type AuthService struct {
	creds    CredentialVerifier
	sessions *SessionManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(creds CredentialVerifier, sessions *SessionManager) *AuthService {
	return &AuthService{creds: creds, sessions: sessions}
}

// Login verifies the submitted credentials and creates a session, returning
// the session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.creds.Verify(username, password) {
		return "", ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, username)
}

// Logout destroys the session. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Check resolves a session token, returning (nil, nil) when the token is
// missing, unknown or expired. A non-nil error means the store failed.
func (s *AuthService) Check(ctx context.Context, token string) (*domain.Session, error) {
	session, err := s.sessions.Validate(ctx, token)
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}
