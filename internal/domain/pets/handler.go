package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-friendly-stays/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/personality-tags", listPersonalityTagsHandler())

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// petRequest es el formulario de alta/edición de una mascota.
type petRequest struct {
	Name            string   `json:"name"`
	Species         Species  `json:"species" enums:"dog,cat"`
	Breed           string   `json:"breed"`
	Age             *int     `json:"age"`
	Weight          *float64 `json:"weight"`
	IsNeutered      bool     `json:"isNeutered"`
	PersonalityTags []string `json:"personalityTags"`
	MedicalNotes    string   `json:"medicalNotes"`
}

// petResponse incluye las categorías derivadas de peso y edad.
type petResponse struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Species         Species      `json:"species"`
	Breed           string       `json:"breed"`
	Age             int          `json:"age"`
	Weight          float64      `json:"weight"`
	IsNeutered      bool         `json:"isNeutered"`
	PersonalityTags []string     `json:"personalityTags"`
	MedicalNotes    string       `json:"medicalNotes"`
	SizeCategory    SizeCategory `json:"sizeCategory"`
	AgeCategory     AgeCategory  `json:"ageCategory"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todos los perfiles guardados para el cliente (`X-Client-ID`, default `default`).
// @Tags pets
// @Produce json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.List(r.Context(), middleware.GetClientID(r.Context()))

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea un perfil. Todos los campos son obligatorios salvo personalityTags y medicalNotes.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Param payload body petRequest true "Perfil de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Age == nil || req.Weight == nil {
			http.Error(w, ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), middleware.GetClientID(r.Context()), CreateInput{
			Name:            req.Name,
			Species:         req.Species,
			Breed:           req.Breed,
			Age:             *req.Age,
			Weight:          *req.Weight,
			IsNeutered:      req.IsNeutered,
			PersonalityTags: req.PersonalityTags,
			MedicalNotes:    req.MedicalNotes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), middleware.GetClientID(r.Context()), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description Reemplaza el perfil completo. Si el ID no existe no hace nada (204 igualmente).
// @Tags pets
// @Accept json
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Perfil completo"
// @Success 204
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Age == nil || req.Weight == nil {
			http.Error(w, ErrInvalidInput.Error(), http.StatusBadRequest)
			return
		}

		err := svc.Update(r.Context(), middleware.GetClientID(r.Context()), Pet{
			ID:              chi.URLParam(r, "petID"),
			Name:            req.Name,
			Species:         req.Species,
			Breed:           req.Breed,
			Age:             *req.Age,
			Weight:          *req.Weight,
			IsNeutered:      req.IsNeutered,
			PersonalityTags: req.PersonalityTags,
			MedicalNotes:    req.MedicalNotes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Si el ID no existe no hace nada (204 igualmente).
// @Tags pets
// @Param X-Client-ID header string false "Identificador del navegador/cliente"
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Remove(r.Context(), middleware.GetClientID(r.Context()), chi.URLParam(r, "petID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func listPersonalityTagsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, PersonalityTags)
	}
}

func toPetResponse(p Pet) petResponse {
	tags := p.PersonalityTags
	if tags == nil {
		tags = []string{}
	}
	return petResponse{
		ID:              p.ID,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		Age:             p.Age,
		Weight:          p.Weight,
		IsNeutered:      p.IsNeutered,
		PersonalityTags: tags,
		MedicalNotes:    p.MedicalNotes,
		SizeCategory:    p.SizeCategory(),
		AgeCategory:     p.AgeCategory(),
	}
}

// writeJSON se repite en cada módulo; todavía no hay un paquete httpx común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
