package memory

import (
	"context"
	"strings"
	"sync"

	"pet-friendly-stays/internal/domain/wizard"
)

// wizardSessions no expira sesiones; el TTL sólo aplica en redis.
type wizardSessions struct {
	mu    sync.RWMutex
	items map[string]wizard.State
}

func NewWizardSessions() wizard.SessionRepository {
	return &wizardSessions{items: make(map[string]wizard.State)}
}

func (r *wizardSessions) Save(ctx context.Context, id string, st wizard.State) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return wizard.ErrSessionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[id] = st
	return nil
}

func (r *wizardSessions) Get(ctx context.Context, id string) (wizard.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return wizard.State{}, wizard.ErrSessionNotFound
	}
	return st, nil
}
