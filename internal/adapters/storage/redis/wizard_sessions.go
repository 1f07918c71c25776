package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pet-friendly-stays/internal/domain/wizard"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const sessionPrefix = "wizardSession:"

// WizardSessions expira cada sesión ttl después de su última escritura.
type WizardSessions struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWizardSessions(client *redis.Client, ttl time.Duration) *WizardSessions {
	return &WizardSessions{client: client, ttl: ttl}
}

func (r *WizardSessions) Save(ctx context.Context, id string, st wizard.State) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return wizard.ErrSessionNotFound
	}

	data, err := json.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "redis: marshal wizard state")
	}
	if err := r.client.Set(ctx, sessionPrefix+id, data, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis: save session %s", id)
	}
	return nil
}

func (r *WizardSessions) Get(ctx context.Context, id string) (wizard.State, error) {
	raw, err := r.client.Get(ctx, sessionPrefix+strings.TrimSpace(id)).Bytes()
	if err == redis.Nil {
		return wizard.State{}, wizard.ErrSessionNotFound
	}
	if err != nil {
		return wizard.State{}, errors.Wrapf(err, "redis: get session %s", id)
	}

	var st wizard.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return wizard.State{}, errors.Wrapf(err, "redis: decode session %s", id)
	}
	return st, nil
}
