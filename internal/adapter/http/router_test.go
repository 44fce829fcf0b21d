package adapthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler(w http.ResponseWriter, r *http.Request, _ Params) {
	w.WriteHeader(http.StatusOK)
}

func TestRouterPathParams(t *testing.T) {
	rt := NewRouter()
	var got Params
	rt.Get("/profile/:id", func(w http.ResponseWriter, r *http.Request, params Params) {
		got = params
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/42", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got["id"] != "42" {
		t.Fatalf("expected id=42, got %q", got["id"])
	}
}

func TestRouterMultipleParams(t *testing.T) {
	rt := NewRouter()
	var got Params
	rt.Get("/teams/:team/members/:member", func(w http.ResponseWriter, r *http.Request, params Params) {
		got = params
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/core/members/7", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got["team"] != "core" || got["member"] != "7" {
		t.Fatalf("unexpected params: %v", got)
	}
}

func TestRouterMatching(t *testing.T) {
	rt := NewRouter()
	rt.Get("/", okHandler)
	rt.Get("/profile/:id", okHandler)
	rt.Post("/api/login", okHandler)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"root", http.MethodGet, "/", http.StatusOK},
		{"param match", http.MethodGet, "/profile/42", http.StatusOK},
		{"extra segment", http.MethodGet, "/profile/42/extra", http.StatusNotFound},
		{"missing segment", http.MethodGet, "/profile", http.StatusNotFound},
		{"trailing slash", http.MethodGet, "/profile/42/", http.StatusNotFound},
		{"empty param segment", http.MethodGet, "/profile//", http.StatusNotFound},
		{"method mismatch on param route", http.MethodPost, "/profile/42", http.StatusNotFound},
		{"method mismatch on literal route", http.MethodGet, "/api/login", http.StatusNotFound},
		{"post match", http.MethodPost, "/api/login", http.StatusOK},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rt.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}

// Registration order decides between routes that could both match: the first
// registered entry wins.
func TestRouterFirstMatchWins(t *testing.T) {
	rt := NewRouter()
	var hit string
	rt.Get("/profile/:id", func(w http.ResponseWriter, r *http.Request, params Params) {
		hit = "param"
		w.WriteHeader(http.StatusOK)
	})
	rt.Get("/profile/me", func(w http.ResponseWriter, r *http.Request, params Params) {
		hit = "literal"
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/me", nil))

	if hit != "param" {
		t.Fatalf("expected first registered route to win, hit %q", hit)
	}
}

// The router never decodes beyond the transport layer. An encoded slash is
// decoded into a real slash by the URL parser before the router sees it, so
// it changes the segment count and the route does not match.
func TestRouterParamDecoding(t *testing.T) {
	rt := NewRouter()
	var got Params
	rt.Get("/profile/:id", func(w http.ResponseWriter, r *http.Request, params Params) {
		got = params
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/a%20b", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got["id"] != "a b" {
		t.Fatalf("expected transport-decoded value %q, got %q", "a b", got["id"])
	}

	w = httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/a%2Fb", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for encoded slash, got %d", w.Code)
	}
}

func TestRouterNotFoundBody(t *testing.T) {
	rt := NewRouter()

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("expected plain-text 404, got %q", ct)
	}
}
