package wizard

import (
	"pet-friendly-stays/internal/domain/pets"
)

// Preference acumula lo respondido en cada paso.
type Preference struct {
	PetSize        pets.SizeCategory `json:"pet_size,omitempty"`
	PetAge         pets.AgeCategory  `json:"pet_age,omitempty"`
	TravelStyle    TravelStyle       `json:"travel_style,omitempty"`
	Budget         BudgetTier        `json:"budget,omitempty"`
	DurationNights int               `json:"duration_nights,omitempty"`
	Interests      []string          `json:"interests"`
}

type PackageStay struct {
	Name             string  `json:"name" yaml:"name"`
	Location         string  `json:"location" yaml:"location"`
	Nights           int     `json:"nights" yaml:"nights"`
	PetFriendlyScore float64 `json:"pet_friendly_score" yaml:"pet_friendly_score"`
}

type Activity struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Duration string `json:"duration" yaml:"duration"`
}

type Suitability struct {
	PetSizes     []pets.SizeCategory `json:"pet_sizes" yaml:"pet_sizes"`
	PetAges      []pets.AgeCategory  `json:"pet_ages" yaml:"pet_ages"`
	TravelStyles []TravelStyle       `json:"travel_styles" yaml:"travel_styles"`
}

// Package es una recomendación de viaje completa.
type Package struct {
	ID             string        `json:"id" yaml:"id"`
	Title          string        `json:"title" yaml:"title"`
	Description    string        `json:"description" yaml:"description"`
	Duration       string        `json:"duration" yaml:"duration"`
	TotalPrice     int64         `json:"total_price" yaml:"total_price"`
	Accommodations []PackageStay `json:"accommodations" yaml:"accommodations"`
	Activities     []Activity    `json:"activities" yaml:"activities"`
	Suitability    Suitability   `json:"suitability" yaml:"suitability"`
}

// State es la foto serializable del asistente (lo que persisten las sesiones).
type State struct {
	Step       Step       `json:"step"`
	Preference Preference `json:"preference"`
	Results    []Package  `json:"results,omitempty"`
}

// Session asocia un State con su id.
type Session struct {
	ID    string `json:"id"`
	State State  `json:"state"`
}
