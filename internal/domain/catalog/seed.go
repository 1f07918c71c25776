package catalog

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed devuelve el catálogo embebido, validado.
func Seed() ([]Accommodation, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodifica un catálogo YAML y verifica IDs y score.
func ParseSeed(raw []byte) ([]Accommodation, error) {
	var items []Accommodation
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "catalog seed")
	}

	seen := make(map[string]struct{}, len(items))
	for i, a := range items {
		if strings.TrimSpace(a.ID) == "" {
			return nil, errors.Errorf("catalog seed: item %d without id", i)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, errors.Errorf("catalog seed: duplicated id %q", a.ID)
		}
		seen[a.ID] = struct{}{}

		if a.PetFriendlyScore < 0 || a.PetFriendlyScore > 5 {
			return nil, errors.Errorf("catalog seed: %q pet_friendly_score out of range", a.ID)
		}
		if a.Price < 0 || a.PetFee < 0 {
			return nil, errors.Errorf("catalog seed: %q negative price", a.ID)
		}
	}
	return items, nil
}
