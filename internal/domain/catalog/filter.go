package catalog

import "strings"

// Filter devuelve la subsecuencia del catálogo que cumple todos los criterios,
// en el mismo orden. No modifica el slice de entrada.
func Filter(items []Accommodation, c SearchCriteria) []Accommodation {
	location := strings.ToLower(strings.TrimSpace(c.Location))
	amenities := nonBlank(c.Amenities)

	out := make([]Accommodation, 0, len(items))
	for _, a := range items {
		if location != "" && !strings.Contains(strings.ToLower(a.Location), location) {
			continue
		}
		if c.PetSize != "" && !a.SuitsSize(c.PetSize) {
			continue
		}
		if c.PetAge != "" && !a.SuitsAge(c.PetAge) {
			continue
		}
		// Ojo: compara contra Price base, no contra TotalNightlyCost.
		if !c.PriceRange.Contains(a.Price) {
			continue
		}
		if len(amenities) > 0 && !matchesAnyAmenity(a.Amenities, amenities) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// matchesAnyAmenity: alguna amenity del catálogo contiene alguna de las pedidas.
func matchesAnyAmenity(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.Contains(h, w) {
				return true
			}
		}
	}
	return false
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
