// Package render produces the HTML pages served by the HTTP adapter. The
// markup is presentation glue; handlers only ever see rendered bytes.
package render

import (
	"bytes"
	"embed"
	"html/template"

	"profileboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTML renders pages from the embedded templates.
type HTML struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*HTML, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &HTML{tmpl: t}, nil
}

func (h *HTML) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProfileList renders the home page card grid.
func (h *HTML) ProfileList(profiles []domain.Profile) ([]byte, error) {
	return h.render("list.html", profiles)
}

// AdminTeam renders the static admin-team page.
func (h *HTML) AdminTeam(admins []domain.AdminProfile) ([]byte, error) {
	return h.render("admin.html", admins)
}

// ProfileDetail renders a single profile page.
func (h *HTML) ProfileDetail(p domain.Profile) ([]byte, error) {
	return h.render("detail.html", p)
}
