package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func writeHTML(w http.ResponseWriter, status int, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(page)
}

// parseJSON decodes the request body into dst, capping the body at maxBytes.
func parseJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// internalError logs the original error and answers with a generic message;
// the cause is never exposed to the caller.
func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, "server error")
}
