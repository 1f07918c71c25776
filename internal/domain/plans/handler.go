package plans

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-friendly-stays/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/plan", func(pr chi.Router) {
		pr.Get("/", getPlanHandler(svc))
		pr.Post("/checklist/{itemID}/toggle", toggleItemHandler(svc))
	})
}

type planResponse struct {
	Progress   Progress        `json:"progress"`
	Checklist  []CategoryGroup `json:"checklist"`
	ScheduleBy []DaySchedule   `json:"schedule"`
}

func toPlanResponse(p Plan) planResponse {
	return planResponse{
		Progress:   p.Progress,
		Checklist:  GroupByCategory(p.Checklist),
		ScheduleBy: GroupByDay(p.Schedule),
	}
}

// getPlanHandler godoc
// @Summary Plan de viaje
// @Description Checklist agrupado por categoría, agenda por día y progreso del cliente.
// @Tags plans
// @Produce json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Success 200 {object} planResponse
// @Router /plan [get]
func getPlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := svc.Get(r.Context(), middleware.GetClientID(r.Context()))
		writeJSON(w, http.StatusOK, toPlanResponse(p))
	}
}

// toggleItemHandler godoc
// @Summary Marcar/desmarcar ítem
// @Tags plans
// @Produce json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Param itemID path string true "Checklist item ID"
// @Success 200 {object} planResponse
// @Failure 404 {string} string
// @Router /plan/checklist/{itemID}/toggle [post]
func toggleItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Toggle(r.Context(), middleware.GetClientID(r.Context()), chi.URLParam(r, "itemID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPlanResponse(p))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
