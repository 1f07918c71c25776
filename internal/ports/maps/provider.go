package maps

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured: falta el token del proveedor. No es una falla, es un gate de configuración.
	ErrNotConfigured = errors.New("map provider not configured")
	ErrInvalidToken  = errors.New("map token rejected by provider")
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker es un pin por alojamiento; sus datos alimentan el popup al seleccionarlo.
type Marker struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Position         Coordinates `json:"position"`
	Price            int64       `json:"price"`
	Rating           float64     `json:"rating"`
	PetFriendlyScore float64     `json:"pet_friendly_score"`
}

// Selection es el popup de un pin: sus datos y la vista centrada en él.
type Selection struct {
	Marker Marker      `json:"marker"`
	Center Coordinates `json:"center"`
	Zoom   float64     `json:"zoom"`
}

// Rendering es lo que el cliente necesita para dibujar el mapa.
type Rendering struct {
	Provider string      `json:"provider"`
	StyleURL string      `json:"style_url"`
	Center   Coordinates `json:"center"`
	Zoom     float64     `json:"zoom"`
	Layer    any         `json:"layer"`
}

// Provider es la capacidad común de mapas; se elige un único adapter por despliegue.
type Provider interface {
	Name() string
	Configured() bool
	SetToken(token string)

	Center() Coordinates
	Zoom() float64

	RenderMarkers(markers []Marker) (Rendering, error)
	OnMarkerSelect(m Marker) (Selection, error)
}

// TokenVerifier es opcional: adapters que pueden validar un token contra su API antes de aceptarlo.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}
