package mapbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-friendly-stays/internal/platform/httpclient"
	"pet-friendly-stays/internal/ports/maps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ maps.Provider      = (*Provider)(nil)
	_ maps.TokenVerifier = (*Provider)(nil)
)

func TestRenderMarkers_RequiresToken(t *testing.T) {
	p := New(Config{})
	assert.False(t, p.Configured())

	_, err := p.RenderMarkers([]maps.Marker{{ID: "1"}})
	assert.True(t, errors.Is(err, maps.ErrNotConfigured))

	p.SetToken("  pk.abc  ")
	assert.True(t, p.Configured())
}

func TestRenderMarkers_GeoJSON(t *testing.T) {
	p := New(Config{Token: "pk.abc"})

	r, err := p.RenderMarkers([]maps.Marker{
		{ID: "1", Title: "Ocean View Pet Resort", Position: maps.Coordinates{Lat: 37.75, Lng: 128.87}, Price: 180000},
		{ID: "3", Title: "Jeju Pet Pool Villa", Position: maps.Coordinates{Lat: 33.25, Lng: 126.56}},
	})
	require.NoError(t, err)

	assert.Equal(t, "mapbox", r.Provider)
	assert.Equal(t, DefaultStyleURL, r.StyleURL)
	assert.Equal(t, DefaultCenter, r.Center)
	assert.Equal(t, float64(DefaultZoom), r.Zoom)

	fc, ok := r.Layer.(featureCollection)
	require.True(t, ok)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, [2]float64{128.87, 37.75}, fc.Features[0].Geometry.Coordinates, "GeoJSON es [lng, lat]")

}

func TestOnMarkerSelect(t *testing.T) {
	jeju := maps.Marker{ID: "3", Title: "Jeju Pet Pool Villa", Position: maps.Coordinates{Lat: 33.25, Lng: 126.56}}

	_, err := New(Config{}).OnMarkerSelect(jeju)
	assert.ErrorIs(t, err, maps.ErrNotConfigured)

	p := New(Config{Token: "pk.abc"})
	sel, err := p.OnMarkerSelect(jeju)
	require.NoError(t, err)
	assert.Equal(t, jeju, sel.Marker)
	assert.Equal(t, jeju.Position, sel.Center)
	assert.Equal(t, float64(SelectZoom), sel.Zoom)

	// no depende de un render previo
	_, err = p.RenderMarkers([]maps.Marker{{ID: "1"}})
	require.NoError(t, err)
	sel, err = p.OnMarkerSelect(jeju)
	require.NoError(t, err)
	assert.Equal(t, "3", sel.Marker.ID)
}

func TestVerifyToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("access_token") {
		case "pk.good":
			_, _ = w.Write([]byte(`{"code":"TokenValid"}`))
		case "pk.expired":
			_, _ = w.Write([]byte(`{"code":"TokenExpired"}`))
		default:
			http.Error(w, `{"code":"TokenInvalid"}`, http.StatusUnauthorized)
		}
	}))
	defer ts.Close()

	api, err := httpclient.New(ts.URL, time.Second)
	require.NoError(t, err)
	p := New(Config{API: api})
	ctx := context.Background()

	assert.NoError(t, p.VerifyToken(ctx, "pk.good"))
	assert.ErrorIs(t, p.VerifyToken(ctx, "pk.expired"), maps.ErrInvalidToken)
	assert.ErrorIs(t, p.VerifyToken(ctx, "pk.nope"), maps.ErrInvalidToken)

	// sin API no se valida nada
	assert.NoError(t, New(Config{}).VerifyToken(ctx, "anything"))
}
