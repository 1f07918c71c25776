package pets

import "github.com/thoas/go-funk"

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	}
	return false
}

// SizeCategory se deriva del peso. También es la etiqueta de tamaño del catálogo.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

func (s SizeCategory) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// AgeCategory se deriva de la edad. También es la etiqueta de edad del catálogo.
type AgeCategory string

const (
	AgePuppy  AgeCategory = "puppy"
	AgeAdult  AgeCategory = "adult"
	AgeSenior AgeCategory = "senior"
)

func (a AgeCategory) IsValid() bool {
	switch a {
	case AgePuppy, AgeAdult, AgeSenior:
		return true
	}
	return false
}

// SizeFor: <=5kg small, <=20kg medium, resto large.
func SizeFor(weightKg float64) SizeCategory {
	switch {
	case weightKg <= 5:
		return SizeSmall
	case weightKg <= 20:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// AgeFor: <=1 puppy, <=7 adult, resto senior.
func AgeFor(years int) AgeCategory {
	switch {
	case years <= 1:
		return AgePuppy
	case years <= 7:
		return AgeAdult
	default:
		return AgeSenior
	}
}

// PersonalityTags es el vocabulario cerrado de rasgos.
var PersonalityTags = []string{
	"gentle",
	"lively",
	"sociable",
	"quiet",
	"curious",
	"wary",
	"affectionate",
	"independent",
	"energetic",
	"calm",
}

func IsPersonalityTag(tag string) bool {
	return funk.ContainsString(PersonalityTags, tag)
}

// Pet es el perfil de una mascota tal como se persiste (JSON bajo una sola key).
type Pet struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Species         Species  `json:"species"`
	Breed           string   `json:"breed"`
	Age             int      `json:"age"`
	Weight          float64  `json:"weight"`
	IsNeutered      bool     `json:"isNeutered"`
	PersonalityTags []string `json:"personalityTags"`
	MedicalNotes    string   `json:"medicalNotes"`
}

func (p Pet) SizeCategory() SizeCategory { return SizeFor(p.Weight) }

func (p Pet) AgeCategory() AgeCategory { return AgeFor(p.Age) }
