package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"pet-friendly-stays/internal/domain/pets"
	"pet-friendly-stays/internal/middleware"
	"pet-friendly-stays/internal/ports/maps"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, mapProvider maps.Provider) {
	r.Route("/accommodations", func(ar chi.Router) {
		ar.Get("/", searchHandler(svc))
		ar.Get("/{accommodationID}", getAccommodationHandler(svc))
	})

	r.Route("/map", func(mr chi.Router) {
		mr.Get("/", mapHandler(svc, mapProvider))
		mr.Get("/markers/{accommodationID}", markerHandler(svc, mapProvider))
		mr.Put("/token", setMapTokenHandler(mapProvider))
	})
}

// accommodationResponse: total_nightly_cost es el precio que se muestra (precio + tarifa mascota).
type accommodationResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Location         string              `json:"location"`
	Coordinates      Coordinates         `json:"coordinates"`
	Price            int64               `json:"price"`
	PetFee           int64               `json:"pet_fee"`
	TotalNightlyCost int64               `json:"total_nightly_cost"`
	Rating           float64             `json:"rating"`
	ReviewCount      int                 `json:"review_count"`
	PetFriendlyScore float64             `json:"pet_friendly_score"`
	ScoreGrade       ScoreGrade          `json:"score_grade"`
	Amenities        []string            `json:"amenities"`
	Theme            Theme               `json:"theme"`
	SuitableSizes    []pets.SizeCategory `json:"suitable_sizes"`
	SuitableAges     []pets.AgeCategory  `json:"suitable_ages"`
}

type appliedCriteria struct {
	Location   string            `json:"location,omitempty"`
	PetSize    pets.SizeCategory `json:"pet_size,omitempty"`
	PetAge     pets.AgeCategory  `json:"pet_age,omitempty"`
	PriceRange string            `json:"price_range,omitempty"`
	Amenities  []string          `json:"amenities,omitempty"`
	PetID      string            `json:"pet_id,omitempty"`
	Sort       SortKey           `json:"sort"`
}

type searchResponse struct {
	Count    int                     `json:"count"`
	Criteria appliedCriteria         `json:"criteria"`
	Items    []accommodationResponse `json:"items"`
}

type mapResponse struct {
	Configured bool            `json:"configured"`
	Setup      string          `json:"setup,omitempty"`
	Rendering  *maps.Rendering `json:"rendering,omitempty"`
}

type setTokenRequest struct {
	Token string `json:"token"`
}

// searchHandler godoc
// @Summary Buscar alojamientos
// @Description Filtra el catálogo (AND entre criterios, vacío = sin filtro). Con `pet_id` el tamaño y la edad salen del perfil y no se aceptan `pet_size`/`pet_age`.
// @Tags accommodations
// @Produce json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Param location query string false "Subcadena de la ubicación (sin distinguir mayúsculas)"
// @Param pet_size query string false "small|medium|large"
// @Param pet_age query string false "puppy|adult|senior"
// @Param price_range query string false "Banda en miles: 0-100, 100-200, 300+"
// @Param amenities query []string false "Subcadenas de amenities (repetible o separado por comas)"
// @Param pet_id query string false "Perfil de mascota seleccionado"
// @Param sort query string false "recommended|rating|price_asc|price_desc|pet_friendly"
// @Success 200 {object} searchResponse
// @Failure 400 {string} string "pet_size/pet_age cannot be combined with pet_id"
// @Router /accommodations [get]
func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseSearchQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Search(r.Context(), middleware.GetClientID(r.Context()), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := searchResponse{
			Count: len(res.Items),
			Criteria: appliedCriteria{
				Location:   res.Criteria.Location,
				PetSize:    res.Criteria.PetSize,
				PetAge:     res.Criteria.PetAge,
				PriceRange: res.Criteria.PriceRange.String(),
				Amenities:  res.Criteria.Amenities,
				Sort:       req.Sort,
			},
			Items: make([]accommodationResponse, 0, len(res.Items)),
		}
		if res.Profile != nil {
			out.Criteria.PetID = res.Profile.ID
		}
		for _, a := range res.Items {
			out.Items = append(out.Items, toAccommodationResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAccommodationHandler godoc
// @Summary Detalle de alojamiento
// @Tags accommodations
// @Produce json
// @Param accommodationID path string true "ID del alojamiento"
// @Success 200 {object} accommodationResponse
// @Failure 404 {string} string "accommodation not found"
// @Router /accommodations/{accommodationID} [get]
func getAccommodationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "accommodationID"))
		if err != nil {
			http.Error(w, "accommodation not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAccommodationResponse(a))
	}
}

// mapHandler godoc
// @Summary Mapa de alojamientos
// @Description Un pin por alojamiento filtrado (mismos query params que la búsqueda). Sin token devuelve `configured=false` y un mensaje de setup.
// @Tags map
// @Produce json
// @Success 200 {object} mapResponse
// @Router /map [get]
func mapHandler(svc *Service, provider maps.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil || !provider.Configured() {
			writeJSON(w, http.StatusOK, mapResponse{
				Configured: false,
				Setup:      "paste a map access token with PUT /map/token to enable the map",
			})
			return
		}

		req, err := parseSearchQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := svc.Search(r.Context(), middleware.GetClientID(r.Context()), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		markers := make([]maps.Marker, 0, len(res.Items))
		for _, a := range res.Items {
			markers = append(markers, toMarker(a))
		}

		rendering, err := provider.RenderMarkers(markers)
		if err != nil {
			if errors.Is(err, maps.ErrNotConfigured) {
				writeJSON(w, http.StatusOK, mapResponse{Configured: false, Setup: err.Error()})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, mapResponse{Configured: true, Rendering: &rendering})
	}
}

// markerHandler godoc
// @Summary Popup de un pin
// @Description Los datos salen del catálogo, no de un render previo.
// @Tags map
// @Produce json
// @Param accommodationID path string true "ID del alojamiento"
// @Success 200 {object} maps.Selection
// @Failure 404 {string} string "marker not found"
// @Failure 409 {string} string "map not configured"
// @Router /map/markers/{accommodationID} [get]
func markerHandler(svc *Service, provider maps.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil || !provider.Configured() {
			http.Error(w, "map not configured", http.StatusConflict)
			return
		}
		a, err := svc.Get(r.Context(), chi.URLParam(r, "accommodationID"))
		if err != nil {
			http.Error(w, "marker not found", http.StatusNotFound)
			return
		}
		sel, err := provider.OnMarkerSelect(toMarker(a))
		if err != nil {
			if errors.Is(err, maps.ErrNotConfigured) {
				http.Error(w, "map not configured", http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sel)
	}
}

// toMarker: el precio del pin es el costo por noche que se muestra.
func toMarker(a Accommodation) maps.Marker {
	return maps.Marker{
		ID:               a.ID,
		Title:            a.Name,
		Position:         maps.Coordinates{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng},
		Price:            a.TotalNightlyCost(),
		Rating:           a.Rating,
		PetFriendlyScore: a.PetFriendlyScore,
	}
}

// setMapTokenHandler godoc
// @Summary Configurar token del mapa
// @Tags map
// @Accept json
// @Param payload body setTokenRequest true "Token del proveedor"
// @Success 204
// @Failure 400 {string} string "invalid json / token required / token rejected"
// @Failure 502 {string} string "map provider unavailable"
// @Router /map/token [put]
func setMapTokenHandler(provider maps.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Token) == "" || provider == nil {
			http.Error(w, "token required", http.StatusBadRequest)
			return
		}
		if v, ok := provider.(maps.TokenVerifier); ok {
			if err := v.VerifyToken(r.Context(), req.Token); err != nil {
				if errors.Is(err, maps.ErrInvalidToken) {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				http.Error(w, "map provider unavailable", http.StatusBadGateway)
				return
			}
		}
		provider.SetToken(req.Token)
		w.WriteHeader(http.StatusNoContent)
	}
}

var errProfileOverride = errors.New("pet_size/pet_age cannot be combined with pet_id")

func parseSearchQuery(q url.Values) (SearchRequest, error) {
	req := SearchRequest{
		Criteria: SearchCriteria{
			Location:   strings.TrimSpace(q.Get("location")),
			PetSize:    pets.SizeCategory(strings.ToLower(strings.TrimSpace(q.Get("pet_size")))),
			PetAge:     pets.AgeCategory(strings.ToLower(strings.TrimSpace(q.Get("pet_age")))),
			PriceRange: ParsePriceRange(q.Get("price_range")),
		},
		PetID: strings.TrimSpace(q.Get("pet_id")),
		Sort:  ParseSortKey(q.Get("sort")),
	}

	for _, raw := range q["amenities"] {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				req.Criteria.Amenities = append(req.Criteria.Amenities, a)
			}
		}
	}

	// Con perfil seleccionado el input manual queda deshabilitado.
	if req.PetID != "" && (req.Criteria.PetSize != "" || req.Criteria.PetAge != "") {
		return SearchRequest{}, errProfileOverride
	}

	return req, nil
}

func toAccommodationResponse(a Accommodation) accommodationResponse {
	return accommodationResponse{
		ID:               a.ID,
		Name:             a.Name,
		Location:         a.Location,
		Coordinates:      a.Coordinates,
		Price:            a.Price,
		PetFee:           a.PetFee,
		TotalNightlyCost: a.TotalNightlyCost(),
		Rating:           a.Rating,
		ReviewCount:      a.ReviewCount,
		PetFriendlyScore: a.PetFriendlyScore,
		ScoreGrade:       GradeScore(a.PetFriendlyScore),
		Amenities:        a.Amenities,
		Theme:            a.Theme,
		SuitableSizes:    a.SuitableSizes,
		SuitableAges:     a.SuitableAges,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
