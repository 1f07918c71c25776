package pets

import (
	"context"
	"strings"
	"sync"

	"pet-friendly-stays/internal/platform/logger"
)

// DefaultClientID se usa cuando el request no identifica al cliente.
const DefaultClientID = "default"

// Service abre un Store por cliente y delega en él. Un Store cuya carga falló
// se reintenta en cada acceso.
type Service struct {
	kv  KeyValue
	log logger.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewService(kv KeyValue, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		kv:     kv,
		log:    log,
		stores: make(map[string]*Store),
	}
}

func (s *Service) store(ctx context.Context, clientID string) *Store {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		clientID = DefaultClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[clientID]
	if !ok {
		// Hidratación por cliente (equivalente al "mount").
		st = OpenStore(ctx, s.kv, StorageKey(clientID), s.log)
		s.stores[clientID] = st
		return st
	}
	if !st.Loaded() {
		st.Reload(ctx)
	}
	return st
}

func (s *Service) List(ctx context.Context, clientID string) []Pet {
	return s.store(ctx, clientID).List()
}

func (s *Service) Get(ctx context.Context, clientID, id string) (Pet, error) {
	p, ok := s.store(ctx, clientID).Get(id)
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, clientID string, in CreateInput) (Pet, error) {
	return s.store(ctx, clientID).Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, clientID string, p Pet) error {
	return s.store(ctx, clientID).Update(ctx, p)
}

func (s *Service) Remove(ctx context.Context, clientID, id string) {
	s.store(ctx, clientID).Remove(ctx, id)
}
