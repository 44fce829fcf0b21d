package adapthttp

import (
	"errors"
	"net/http"

	"profileboard/internal/app"
	"profileboard/internal/domain"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request, _ Params) {
	profiles, err := s.profiles.List(r.Context())
	if err != nil {
		s.internalError(w, "list profiles", err)
		return
	}

	page, err := s.renderer.ProfileList(profiles)
	if err != nil {
		s.internalError(w, "render profile list", err)
		return
	}
	writeHTML(w, http.StatusOK, page)
}

func (s *Server) handleAdminTeam(w http.ResponseWriter, r *http.Request, _ Params) {
	page, err := s.renderer.AdminTeam(domain.AdminProfiles())
	if err != nil {
		s.internalError(w, "render admin team", err)
		return
	}
	writeHTML(w, http.StatusOK, page)
}

func (s *Server) handleProfileDetail(w http.ResponseWriter, r *http.Request, params Params) {
	profile, err := s.profiles.Get(r.Context(), params["id"])
	if errors.Is(err, app.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		s.internalError(w, "get profile", err)
		return
	}

	page, err := s.renderer.ProfileDetail(*profile)
	if err != nil {
		s.internalError(w, "render profile detail", err)
		return
	}
	writeHTML(w, http.StatusOK, page)
}

func (s *Server) handleAddProfile(w http.ResponseWriter, r *http.Request, _ Params) {
	session, err := s.auth.Check(r.Context(), sessionToken(r))
	if err != nil {
		s.internalError(w, "session check", err)
		return
	}
	if session == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input domain.Profile
	if err := parseJSON(w, r, s.opts.MaxRequestBytes, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := s.profiles.Add(r.Context(), input)
	if err != nil {
		s.internalError(w, "add profile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"profile": profile,
	})
}
