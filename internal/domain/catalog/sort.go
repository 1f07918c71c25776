package catalog

import (
	"sort"
	"strings"
)

// SortKey ordena resultados de búsqueda.
// @Enum recommended, rating, price_asc, price_desc, pet_friendly
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortRating      SortKey = "rating"
	SortPriceAsc    SortKey = "price_asc"
	SortPriceDesc   SortKey = "price_desc"
	SortPetFriendly SortKey = "pet_friendly"
)

func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortRating, SortPriceAsc, SortPriceDesc, SortPetFriendly:
		return k
	default:
		return SortRecommended
	}
}

// Sort devuelve una copia ordenada (estable). Los precios se comparan por total con tarifa.
func Sort(items []Accommodation, key SortKey) []Accommodation {
	out := make([]Accommodation, len(items))
	copy(out, items)

	var less func(a, b Accommodation) bool
	switch key {
	case SortRating:
		less = func(a, b Accommodation) bool { return a.Rating > b.Rating }
	case SortPriceAsc:
		less = func(a, b Accommodation) bool { return a.TotalNightlyCost() < b.TotalNightlyCost() }
	case SortPriceDesc:
		less = func(a, b Accommodation) bool { return a.TotalNightlyCost() > b.TotalNightlyCost() }
	case SortPetFriendly:
		less = func(a, b Accommodation) bool { return a.PetFriendlyScore > b.PetFriendlyScore }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
