package reviews

import (
	"context"
	_ "embed"
	"errors"
	"strings"

	"pet-friendly-stays/internal/domain/catalog"
	"pet-friendly-stays/internal/domain/pets"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var seedYAML []byte

var (
	ErrNotFound     = errors.New("accommodation not found")
	ErrInvalidInput = errors.New("invalid size filter")
)

func Seed() ([]Review, error) {
	var items []Review
	if err := yaml.Unmarshal(seedYAML, &items); err != nil {
		return nil, pkgerrors.Wrap(err, "reviews seed")
	}
	return items, nil
}

type AccommodationFinder interface {
	Get(ctx context.Context, id string) (catalog.Accommodation, error)
}

type Service struct {
	finder  AccommodationFinder
	reviews []Review
}

// NewService: por ahora todos los alojamientos comparten el mismo set de reseñas.
func NewService(finder AccommodationFinder, reviews []Review) *Service {
	return &Service{finder: finder, reviews: reviews}
}

type Listing struct {
	AccommodationID string   `json:"accommodation_id"`
	Filter          string   `json:"filter"`
	Summary         Summary  `json:"summary"`
	Reviews         []Review `json:"reviews"`
}

func (s *Service) List(ctx context.Context, accommodationID, size string) (Listing, error) {
	size = strings.ToLower(strings.TrimSpace(size))
	if size == "" {
		size = SizeAll
	}
	if size != SizeAll && !pets.SizeCategory(size).IsValid() {
		return Listing{}, ErrInvalidInput
	}

	a, err := s.finder.Get(ctx, accommodationID)
	if err != nil {
		return Listing{}, ErrNotFound
	}

	return Listing{
		AccommodationID: a.ID,
		Filter:          size,
		Summary:         Summarize(s.reviews),
		Reviews:         FilterBySize(s.reviews, size),
	}, nil
}
