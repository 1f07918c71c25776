package wizard

import (
	"context"
	"strings"
	"sync"

	"pet-friendly-stays/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo  SessionRepository
	gen   Generator
	log   logger.Logger
	newID func() string

	// un lock global alcanza: cada operación es corta
	mu sync.Mutex
}

func NewService(repo SessionRepository, gen Generator, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		gen:   gen,
		log:   log,
		newID: uuid.NewString,
	}
}

func (s *Service) Start(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := New(s.gen)
	id := s.newID()
	if err := s.repo.Save(ctx, id, w.State()); err != nil {
		return Session{}, err
	}
	s.log.Debug("wizard session started", map[string]any{"session_id": id})
	return Session{ID: id, State: w.State()}, nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	id = strings.TrimSpace(id)
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: id, State: st}, nil
}

// Complete devuelve advanced=false cuando el input no hace avanzar el asistente.
func (s *Service) Complete(ctx context.Context, id string, in StepInput) (Session, bool, error) {
	return s.mutate(ctx, id, func(w *Wizard) (bool, error) {
		return w.Complete(ctx, in)
	})
}

func (s *Service) Back(ctx context.Context, id string) (Session, bool, error) {
	return s.mutate(ctx, id, func(w *Wizard) (bool, error) {
		return w.Back(), nil
	})
}

func (s *Service) Reset(ctx context.Context, id string) (Session, error) {
	sess, _, err := s.mutate(ctx, id, func(w *Wizard) (bool, error) {
		w.Reset()
		return true, nil
	})
	return sess, err
}

func (s *Service) mutate(ctx context.Context, id string, fn func(*Wizard) (bool, error)) (Session, bool, error) {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, false, err
	}

	w := Restore(st, s.gen)
	changed, err := fn(w)
	if err != nil {
		return Session{}, false, err
	}
	if !changed {
		return Session{ID: id, State: w.State()}, false, nil
	}

	if err := s.repo.Save(ctx, id, w.State()); err != nil {
		return Session{}, false, err
	}
	s.log.Debug("wizard step", map[string]any{"session_id": id, "step": string(w.Current())})
	return Session{ID: id, State: w.State()}, true, nil
}
