package reviews

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/accommodations/{accommodationID}/reviews", func(rr chi.Router) {
		rr.Get("/", listReviewsHandler(svc))
	})
}

// listReviewsHandler godoc
// @Summary Reseñas del alojamiento
// @Description El resumen siempre se calcula sobre todas las reseñas; size sólo filtra la lista.
// @Tags reviews
// @Produce json
// @Param accommodationID path string true "Accommodation ID"
// @Param size query string false "Tamaño del perro del autor" Enums(all, small, medium, large)
// @Success 200 {object} Listing
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /accommodations/{accommodationID}/reviews [get]
func listReviewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.List(r.Context(), chi.URLParam(r, "accommodationID"), r.URL.Query().Get("size"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
