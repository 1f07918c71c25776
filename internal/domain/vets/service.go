package vets

import (
	"context"
	"errors"
	"time"

	"pet-friendly-stays/internal/domain/catalog"
	"pet-friendly-stays/internal/platform/logger"
)

var ErrNotFound = errors.New("accommodation not found")

// AccommodationFinder lo implementa catalog.Service.
type AccommodationFinder interface {
	Get(ctx context.Context, id string) (catalog.Accommodation, error)
}

// Nearby es la respuesta de una consulta: la lista no depende del alojamiento todavía.
type Nearby struct {
	AccommodationID   string     `json:"accommodation_id"`
	AccommodationName string     `json:"accommodation_name"`
	Location          string     `json:"location"`
	Hospitals         []Hospital `json:"hospitals"`
}

type Service struct {
	finder    AccommodationFinder
	hospitals []Hospital
	delay     time.Duration
	log       logger.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

func NewService(finder AccommodationFinder, hospitals []Hospital, delay time.Duration, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		finder:    finder,
		hospitals: hospitals,
		delay:     delay,
		log:       log,
		sleep:     sleepCtx,
	}
}

// Nearby simula la latencia de un lookup remoto antes de devolver la lista fija.
func (s *Service) Nearby(ctx context.Context, accommodationID string) (Nearby, error) {
	a, err := s.finder.Get(ctx, accommodationID)
	if err != nil {
		return Nearby{}, ErrNotFound
	}

	if s.delay > 0 {
		if err := s.sleep(ctx, s.delay); err != nil {
			return Nearby{}, err
		}
	}

	out := make([]Hospital, len(s.hospitals))
	copy(out, s.hospitals)

	s.log.Debug("vet lookup", map[string]any{"accommodation_id": a.ID, "count": len(out)})
	return Nearby{
		AccommodationID:   a.ID,
		AccommodationName: a.Name,
		Location:          a.Location,
		Hospitals:         out,
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
