package reviews

import (
	"math"

	"pet-friendly-stays/internal/domain/pets"
)

type PetInfo struct {
	Name  string            `json:"name" yaml:"name"`
	Breed string            `json:"breed" yaml:"breed"`
	Size  pets.SizeCategory `json:"size" yaml:"size"`
}

type Review struct {
	ID                string   `json:"id" yaml:"id"`
	UserName          string   `json:"user_name" yaml:"user_name"`
	Rating            float64  `json:"rating" yaml:"rating"`
	PetFriendlyRating float64  `json:"pet_friendly_rating" yaml:"pet_friendly_rating"`
	CleanlinessRating float64  `json:"cleanliness_rating" yaml:"cleanliness_rating"`
	FacilitiesRating  float64  `json:"facilities_rating" yaml:"facilities_rating"`
	Date              string   `json:"date" yaml:"date"`
	Pet               PetInfo  `json:"pet" yaml:"pet"`
	Content           string   `json:"content" yaml:"content"`
	Images            []string `json:"images" yaml:"images"`
	Helpful           int      `json:"helpful" yaml:"helpful"`
}

// SizeAll desactiva el filtro por tamaño.
const SizeAll = "all"

// FilterBySize devuelve las reseñas cuyo perro tiene ese tamaño. "" o "all" no filtran.
func FilterBySize(items []Review, size string) []Review {
	if size == "" || size == SizeAll {
		return append([]Review(nil), items...)
	}
	out := make([]Review, 0, len(items))
	for _, r := range items {
		if string(r.Pet.Size) == size {
			out = append(out, r)
		}
	}
	return out
}

type Summary struct {
	Count              int     `json:"count"`
	AverageRating      float64 `json:"average_rating"`
	AveragePetFriendly float64 `json:"average_pet_friendly"`
}

// Summarize promedia sobre todas las reseñas (no sobre la vista filtrada), redondeado a un decimal.
func Summarize(items []Review) Summary {
	if len(items) == 0 {
		return Summary{}
	}
	var rating, petFriendly float64
	for _, r := range items {
		rating += r.Rating
		petFriendly += r.PetFriendlyRating
	}
	n := float64(len(items))
	return Summary{
		Count:              len(items),
		AverageRating:      round1(rating / n),
		AveragePetFriendly: round1(petFriendly / n),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
