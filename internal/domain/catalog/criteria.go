package catalog

import (
	"strconv"
	"strings"

	"pet-friendly-stays/internal/domain/pets"
)

// PriceUnit: los rangos de precio se expresan en miles.
const PriceUnit = 1000

// PriceRange es una banda cerrada [Min, Max] u abierta [Min, ∞) en miles.
// El zero value no filtra nada.
type PriceRange struct {
	Min  int64
	Max  int64
	Open bool
	Set  bool
}

// ParsePriceRange acepta "a-b" y "a+". Cualquier otra cosa => sin filtro.
func ParsePriceRange(s string) PriceRange {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceRange{}
	}

	if strings.HasSuffix(s, "+") {
		from, err := strconv.ParseInt(strings.TrimSpace(strings.TrimSuffix(s, "+")), 10, 64)
		if err != nil || from < 0 {
			return PriceRange{}
		}
		return PriceRange{Min: from, Open: true, Set: true}
	}

	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return PriceRange{}
	}
	from, err1 := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	to, err2 := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err1 != nil || err2 != nil || from < 0 || to < from {
		return PriceRange{}
	}
	return PriceRange{Min: from, Max: to, Set: true}
}

// Contains compara contra un precio en KRW (no en miles).
func (r PriceRange) Contains(price int64) bool {
	if !r.Set {
		return true
	}
	if price < r.Min*PriceUnit {
		return false
	}
	if r.Open {
		return true
	}
	return price <= r.Max*PriceUnit
}

func (r PriceRange) String() string {
	switch {
	case !r.Set:
		return ""
	case r.Open:
		return strconv.FormatInt(r.Min, 10) + "+"
	default:
		return strconv.FormatInt(r.Min, 10) + "-" + strconv.FormatInt(r.Max, 10)
	}
}

// SearchCriteria: criterios independientes combinados con AND. Vacío = no filtra.
type SearchCriteria struct {
	Location   string
	PetSize    pets.SizeCategory
	PetAge     pets.AgeCategory
	PriceRange PriceRange
	Amenities  []string
}
