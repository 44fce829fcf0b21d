// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"errors"
	"net/http"

	"profileboard/internal/app"
)

const sessionCookieName = "session"

// sessionToken extracts the session cookie value, or "" when absent.
func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, _ Params) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSON(w, r, s.opts.MaxRequestBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err != nil {
		s.internalError(w, "login", err)
		return
	}

	maxAge := int(s.opts.SessionDuration.Seconds())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"token":     token,
		"expiresIn": maxAge,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ Params) {
	if token := sessionToken(r); token != "" {
		if err := s.auth.Logout(r.Context(), token); err != nil {
			s.logger.Error("logout", "error", err)
		}
	}

	// MaxAge -1 serializes as Max-Age=0, clearing the cookie.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleCheckSession(w http.ResponseWriter, r *http.Request, _ Params) {
	session, err := s.auth.Check(r.Context(), sessionToken(r))
	if err != nil {
		s.logger.Error("session check", "error", err)
	}
	if session == nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      session.Username,
	})
}
