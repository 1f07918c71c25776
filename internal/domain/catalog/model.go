package catalog

import "pet-friendly-stays/internal/domain/pets"

// Theme es una agrupación estática del catálogo.
// @Enum beach, mountain, valley, city
type Theme string

const (
	ThemeBeach    Theme = "beach"
	ThemeMountain Theme = "mountain"
	ThemeValley   Theme = "valley"
	ThemeCity     Theme = "city"
)

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Accommodation es de solo lectura; precios en KRW por noche.
type Accommodation struct {
	ID               string              `json:"id" yaml:"id"`
	Name             string              `json:"name" yaml:"name"`
	Location         string              `json:"location" yaml:"location"`
	Coordinates      Coordinates         `json:"coordinates" yaml:"coordinates"`
	Price            int64               `json:"price" yaml:"price"`
	PetFee           int64               `json:"pet_fee" yaml:"pet_fee"`
	Rating           float64             `json:"rating" yaml:"rating"`
	ReviewCount      int                 `json:"review_count" yaml:"review_count"`
	PetFriendlyScore float64             `json:"pet_friendly_score" yaml:"pet_friendly_score"`
	Amenities        []string            `json:"amenities" yaml:"amenities"`
	Theme            Theme               `json:"theme" yaml:"theme"`
	SuitableSizes    []pets.SizeCategory `json:"suitable_sizes" yaml:"suitable_sizes"`
	SuitableAges     []pets.AgeCategory  `json:"suitable_ages" yaml:"suitable_ages"`
}

// TotalNightlyCost es el precio que se muestra siempre: la tarifa de mascota nunca se cobra aparte.
func (a Accommodation) TotalNightlyCost() int64 {
	return a.Price + a.PetFee
}

func (a Accommodation) SuitsSize(s pets.SizeCategory) bool {
	for _, v := range a.SuitableSizes {
		if v == s {
			return true
		}
	}
	return false
}

func (a Accommodation) SuitsAge(age pets.AgeCategory) bool {
	for _, v := range a.SuitableAges {
		if v == age {
			return true
		}
	}
	return false
}
