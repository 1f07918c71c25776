package mapbox

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"pet-friendly-stays/internal/platform/httpclient"
	"pet-friendly-stays/internal/ports/maps"

	pkgerrors "github.com/pkg/errors"
)

const (
	DefaultStyleURL    = "mapbox://styles/mapbox/light-v11"
	DefaultMarkerColor = "#3B82F6"
	DefaultZoom        = 7
	SelectZoom         = 12
	DefaultAPIURL      = "https://api.mapbox.com"
)

// Centro geográfico de Corea del Sur.
var DefaultCenter = maps.Coordinates{Lat: 35.9078, Lng: 127.7669}

type Config struct {
	Token    string
	StyleURL string

	// API opcional: si viene, PUT /map/token valida el token contra /tokens/v2.
	API *httpclient.Client
}

// Provider arma una capa GeoJSON con un pin por alojamiento.
type Provider struct {
	mu       sync.RWMutex
	token    string
	styleURL string
	api      *httpclient.Client
}

func New(cfg Config) *Provider {
	style := strings.TrimSpace(cfg.StyleURL)
	if style == "" {
		style = DefaultStyleURL
	}
	return &Provider{
		token:    strings.TrimSpace(cfg.Token),
		styleURL: style,
		api:      cfg.API,
	}
}

func (p *Provider) Name() string { return "mapbox" }

func (p *Provider) Configured() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token != ""
}

// SetToken permite pegar el token en runtime.
func (p *Provider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = strings.TrimSpace(token)
}

func (p *Provider) Center() maps.Coordinates { return DefaultCenter }

func (p *Provider) Zoom() float64 { return DefaultZoom }

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [lng, lat]
}

func (p *Provider) RenderMarkers(markers []maps.Marker) (maps.Rendering, error) {
	if !p.Configured() {
		return maps.Rendering{}, maps.ErrNotConfigured
	}

	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(markers))}
	for _, m := range markers {
		fc.Features = append(fc.Features, feature{
			Type: "Feature",
			ID:   m.ID,
			Geometry: geometry{
				Type:        "Point",
				Coordinates: [2]float64{m.Position.Lng, m.Position.Lat},
			},
			Properties: map[string]any{
				"title":              m.Title,
				"price":              m.Price,
				"rating":             m.Rating,
				"pet_friendly_score": m.PetFriendlyScore,
				"marker-color":       DefaultMarkerColor,
			},
		})
	}

	return maps.Rendering{
		Provider: p.Name(),
		StyleURL: p.styleURL,
		Center:   DefaultCenter,
		Zoom:     DefaultZoom,
		Layer:    fc,
	}, nil
}

// OnMarkerSelect centra la vista en el pin elegido; no guarda estado entre requests.
func (p *Provider) OnMarkerSelect(m maps.Marker) (maps.Selection, error) {
	if !p.Configured() {
		return maps.Selection{}, maps.ErrNotConfigured
	}
	return maps.Selection{Marker: m, Center: m.Position, Zoom: SelectZoom}, nil
}

type tokenStatus struct {
	Code string `json:"code"`
}

// VerifyToken consulta GET /tokens/v2; sin API configurada acepta cualquier token.
func (p *Provider) VerifyToken(ctx context.Context, token string) error {
	if p.api == nil {
		return nil
	}

	var st tokenStatus
	err := p.api.GetJSON(ctx, "/tokens/v2", url.Values{"access_token": {strings.TrimSpace(token)}}, &st)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
			return maps.ErrInvalidToken
		}
		return pkgerrors.Wrap(err, "mapbox: verify token")
	}
	if st.Code != "TokenValid" {
		return maps.ErrInvalidToken
	}
	return nil
}
