package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"

	"github.com/dmitrijs2005/airlineadmin/internal/server/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// view is the data passed to every page template.
type view struct {
	Session Session
	Flashes []Flash

	Search     string
	Passengers []models.Passenger
	Passenger  *models.Passenger
	Flights    []models.Flight
	Flight     *models.Flight
	Statuses   []models.FlightStatus
	Shipments  []models.Shipment
	Shipment   *models.Shipment

	// Form holds rejected input shown back on an edit page.
	Form url.Values
}

var funcs = template.FuncMap{
	"money":      func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"num":        func(v float64) string { return fmt.Sprintf("%g", v) },
	"pathEscape": url.PathEscape,
	"field":      formField,
	"checked":    formChecked,
}

// formField prefers a submitted value over the stored one.
func formField(form url.Values, key string, stored any) string {
	if _, ok := form[key]; ok {
		return form.Get(key)
	}
	if f, ok := stored.(float64); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprint(stored)
}

// formChecked reports a checkbox state. Once a form was submitted an absent
// field means unticked.
func formChecked(form url.Values, key string, stored bool) bool {
	if form == nil {
		return stored
	}
	_, ok := form[key]
	return ok
}

// parseTemplates builds one template set per page, each combined with the
// shared layout.
func parseTemplates() (map[string]*template.Template, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		name := path.Base(p)
		if name == "layout.html" {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// render executes page into a buffer first so a template error still
// yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, v view) {
	t, ok := h.templates[page]
	if !ok {
		h.logger.Error(r.Context(), "unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	v.Session = SessionFromContext(r.Context())
	v.Flashes = append(h.popFlashes(w, r), v.Flashes...)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		h.logger.Error(r.Context(), "render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found.html", view{})
}
