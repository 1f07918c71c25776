package wizard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/wizard", func(wr chi.Router) {
		wr.Post("/sessions", startSessionHandler(svc))
		wr.Get("/options", optionsHandler())

		wr.Get("/sessions/{sessionID}", getSessionHandler(svc))
		wr.Post("/sessions/{sessionID}/steps", completeStepHandler(svc))
		wr.Post("/sessions/{sessionID}/back", backHandler(svc))
		wr.Post("/sessions/{sessionID}/reset", resetHandler(svc))
	})
}

// stepRequest: data se decodifica según step (pet_info, travel_style, budget, interests).
type stepRequest struct {
	Step Step           `json:"step" enums:"pet_info,travel_style,budget,interests"`
	Data map[string]any `json:"data"`
}

type optionsResponse struct {
	Steps        []Step        `json:"steps"`
	TravelStyles []TravelStyle `json:"travel_styles"`
	Budgets      []BudgetTier  `json:"budgets"`
	Interests    []string      `json:"interests"`
	MinNights    int           `json:"min_nights"`
	MaxNights    int           `json:"max_nights"`
}

// startSessionHandler godoc
// @Summary Iniciar asistente
// @Description Crea una sesión nueva en el paso pet_info.
// @Tags wizard
// @Produce json
// @Success 201 {object} Session
// @Failure 500 {string} string
// @Router /wizard/sessions [post]
func startSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Start(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, sess)
	}
}

// optionsHandler godoc
// @Summary Opciones del asistente
// @Tags wizard
// @Produce json
// @Success 200 {object} optionsResponse
// @Router /wizard/options [get]
func optionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, optionsResponse{
			Steps:        append(append([]Step{}, Steps...), StepResults),
			TravelStyles: []TravelStyle{StyleRelaxing, StyleActive, StyleAdventure},
			Budgets:      []BudgetTier{BudgetSaver, BudgetStandard, BudgetLuxury},
			Interests:    InterestOptions,
			MinNights:    MinDurationNights,
			MaxNights:    MaxDurationNights,
		})
	}
}

// getSessionHandler godoc
// @Summary Ver sesión
// @Tags wizard
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} Session
// @Failure 404 {string} string
// @Router /wizard/sessions/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Get(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// completeStepHandler godoc
// @Summary Completar paso
// @Description Si el paso no coincide con el actual o los datos son inválidos responde 409 con el estado sin cambios.
// @Tags wizard
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param payload body stepRequest true "Paso y datos"
// @Success 200 {object} Session
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 409 {object} Session
// @Router /wizard/sessions/{sessionID}/steps [post]
func completeStepHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := DecodeStep(req.Step, req.Data)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sess, advanced, err := svc.Complete(r.Context(), chi.URLParam(r, "sessionID"), in)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		if !advanced {
			writeJSON(w, http.StatusConflict, sess)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// backHandler godoc
// @Summary Paso anterior
// @Description En el primer paso no hace nada (200 con el mismo estado).
// @Tags wizard
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} Session
// @Failure 404 {string} string
// @Router /wizard/sessions/{sessionID}/back [post]
func backHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, err := svc.Back(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// resetHandler godoc
// @Summary Reiniciar asistente
// @Tags wizard
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} Session
// @Failure 404 {string} string
// @Router /wizard/sessions/{sessionID}/reset [post]
func resetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Reset(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
