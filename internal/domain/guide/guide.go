package guide

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed guide.yaml
var guideYAML []byte

type Theme struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tips        []string `json:"tips" yaml:"tips"`
	Essentials  []string `json:"essentials" yaml:"essentials"`
	Warnings    []string `json:"warnings" yaml:"warnings"`
}

type Section struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// Guide es contenido estático: guías por tema y consejos generales.
type Guide struct {
	Themes  []Theme   `json:"themes" yaml:"themes"`
	General []Section `json:"general" yaml:"general"`
}

func Load() (Guide, error) {
	var g Guide
	if err := yaml.Unmarshal(guideYAML, &g); err != nil {
		return Guide{}, errors.Wrap(err, "guide")
	}
	return g, nil
}

// Theme busca por id sin distinguir mayúsculas.
func (g Guide) Theme(id string) (Theme, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range g.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

func RegisterRoutes(r chi.Router, g Guide) {
	r.Get("/guide", guideHandler(g))
}

// guideHandler godoc
// @Summary Guía de viaje con mascotas
// @Description Con theme devuelve sólo esa guía temática (beach, mountain, valley).
// @Tags guide
// @Produce json
// @Param theme query string false "Tema" Enums(beach, mountain, valley)
// @Success 200 {object} Guide
// @Failure 404 {string} string
// @Router /guide [get]
func guideHandler(g Guide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme := r.URL.Query().Get("theme")
		if theme == "" {
			writeJSON(w, http.StatusOK, g)
			return
		}

		t, ok := g.Theme(theme)
		if !ok {
			http.Error(w, "theme not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, Guide{Themes: []Theme{t}, General: g.General})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
