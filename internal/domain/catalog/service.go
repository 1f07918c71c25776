package catalog

import (
	"context"
	"errors"
	"strings"

	"pet-friendly-stays/internal/domain/pets"
	"pet-friendly-stays/internal/platform/logger"
)

var (
	ErrNotFound = errors.New("accommodation not found")
)

// ProfileFinder resuelve el perfil seleccionado en la búsqueda (lo implementa pets.Service).
type ProfileFinder interface {
	Get(ctx context.Context, clientID, id string) (pets.Pet, error)
}

type Service struct {
	repo     Repository
	profiles ProfileFinder
	log      logger.Logger
}

func NewService(repo Repository, profiles ProfileFinder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, profiles: profiles, log: log}
}

type SearchRequest struct {
	Criteria SearchCriteria
	// PetID: si apunta a un perfil existente, tamaño y edad salen del perfil.
	PetID string
	Sort  SortKey
}

type SearchResult struct {
	Items    []Accommodation
	Criteria SearchCriteria // criterios efectivos (con tamaño/edad derivados)
	Profile  *pets.Pet
}

func (s *Service) Search(ctx context.Context, clientID string, req SearchRequest) (SearchResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return SearchResult{}, err
	}

	c := req.Criteria
	var profile *pets.Pet

	if petID := strings.TrimSpace(req.PetID); petID != "" && s.profiles != nil {
		p, err := s.profiles.Get(ctx, clientID, petID)
		if err != nil {
			// Perfil desconocido: se busca como si no hubiera perfil seleccionado.
			s.log.Debug("search profile not found", map[string]any{"pet_id": petID, "client_id": clientID})
		} else {
			c.PetSize = p.SizeCategory()
			c.PetAge = p.AgeCategory()
			profile = &p
		}
	}

	return SearchResult{
		Items:    Sort(Filter(all, c), req.Sort),
		Criteria: c,
		Profile:  profile,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (Accommodation, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Accommodation{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Accommodation, error) {
	return s.repo.List(ctx)
}
