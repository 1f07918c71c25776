package wizard

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("wizard session not found")

// SessionRepository guarda el State de cada sesión.
// Get devuelve ErrSessionNotFound si no existe (o expiró).
type SessionRepository interface {
	Save(ctx context.Context, id string, st State) error
	Get(ctx context.Context, id string) (State, error)
}
