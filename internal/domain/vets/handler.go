package vets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/accommodations/{accommodationID}/vets", func(vr chi.Router) {
		vr.Get("/", nearbyHandler(svc))
	})
}

type hospitalResponse struct {
	Hospital
	CallURL       string `json:"call_url"`
	DirectionsURL string `json:"directions_url"`
}

type nearbyResponse struct {
	AccommodationID   string             `json:"accommodation_id"`
	AccommodationName string             `json:"accommodation_name"`
	Location          string             `json:"location"`
	Count             int                `json:"count"`
	Hospitals         []hospitalResponse `json:"hospitals"`
}

// nearbyHandler godoc
// @Summary Veterinarias cercanas
// @Description Lista fija de hospitales veterinarios cerca del alojamiento, con links de llamada y cómo llegar.
// @Tags vets
// @Produce json
// @Param accommodationID path string true "Accommodation ID"
// @Success 200 {object} nearbyResponse
// @Failure 404 {string} string
// @Router /accommodations/{accommodationID}/vets [get]
func nearbyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Nearby(r.Context(), chi.URLParam(r, "accommodationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			// el cliente cortó la request durante la espera
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
			return
		}

		out := nearbyResponse{
			AccommodationID:   res.AccommodationID,
			AccommodationName: res.AccommodationName,
			Location:          res.Location,
			Count:             len(res.Hospitals),
			Hospitals:         make([]hospitalResponse, 0, len(res.Hospitals)),
		}
		for _, h := range res.Hospitals {
			out.Hospitals = append(out.Hospitals, hospitalResponse{
				Hospital:      h,
				CallURL:       CallURL(h.Phone),
				DirectionsURL: DirectionsURL(h.Address),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
