package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-friendly-stays/internal/domain/pets"
	"pet-friendly-stays/internal/domain/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ pets.KeyValue            = (*KV)(nil)
	_ wizard.SessionRepository = (*WizardSessions)(nil)
)

// Necesita un redis real: REDIS_TEST_ADDR=localhost:6379 go test ./...
func openTestClient(t *testing.T) *KV {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client, err := Open(context.Background(), Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewKV(client)
}

func TestKV_LoadMissingThenSave(t *testing.T) {
	kv := openTestClient(t)
	ctx := context.Background()
	key := "petProfiles:test-" + uuid.NewString()
	t.Cleanup(func() { kv.client.Del(ctx, key) })

	raw, err := kv.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, kv.Save(ctx, key, []byte(`[]`)))
	raw, err = kv.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestWizardSessions_RoundTripAndTTL(t *testing.T) {
	kv := openTestClient(t)
	ctx := context.Background()
	repo := NewWizardSessions(kv.client, time.Minute)
	id := uuid.NewString()
	t.Cleanup(func() { kv.client.Del(ctx, sessionPrefix+id) })

	_, err := repo.Get(ctx, id)
	assert.ErrorIs(t, err, wizard.ErrSessionNotFound)

	st := wizard.State{Step: wizard.StepBudget, Preference: wizard.Preference{PetSize: pets.SizeMedium, Interests: []string{}}}
	require.NoError(t, repo.Save(ctx, id, st))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, st, got)

	ttl, err := kv.client.TTL(ctx, sessionPrefix+id).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}
