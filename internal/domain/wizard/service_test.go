package wizard

import (
	"context"
	"testing"

	"pet-friendly-stays/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSessions struct {
	items  map[string]State
	writes int
}

func (m *mapSessions) Save(ctx context.Context, id string, st State) error {
	m.writes++
	m.items[id] = st
	return nil
}

func (m *mapSessions) Get(ctx context.Context, id string) (State, error) {
	st, ok := m.items[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return st, nil
}

func newTestService() (*Service, *mapSessions) {
	repo := &mapSessions{items: map[string]State{}}
	svc := NewService(repo, MustStaticGenerator(), nil)
	svc.newID = func() string { return "sess-1" }
	return svc, repo
}

func TestService_StartAndAdvance(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	sess, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sess.ID)
	assert.Equal(t, StepPetInfo, sess.State.Step)

	sess, advanced, err := svc.Complete(ctx, "sess-1", PetInfoInput{PetSize: pets.SizeSmall, PetAge: pets.AgeSenior})
	require.NoError(t, err)
	assert.True(t, advanced)
	assert.Equal(t, StepTravelStyle, sess.State.Step)
	assert.Equal(t, StepTravelStyle, repo.items["sess-1"].Step)
}

func TestService_NoAdvanceDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	_, err := svc.Start(ctx)
	require.NoError(t, err)
	writes := repo.writes

	sess, advanced, err := svc.Complete(ctx, "sess-1", BudgetInput{Budget: BudgetSaver})
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, StepPetInfo, sess.State.Step)

	_, moved, err := svc.Back(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, writes, repo.writes)
}

func TestService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = svc.Complete(ctx, "nope", InterestsInput{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Reset(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ResetAfterResults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	repo.items["sess-1"] = State{Step: StepInterests, Preference: Preference{PetSize: pets.SizeLarge}}

	sess, advanced, err := svc.Complete(ctx, "sess-1", InterestsInput{Interests: []string{"beach"}})
	require.NoError(t, err)
	require.True(t, advanced)
	assert.Equal(t, StepResults, sess.State.Step)
	assert.Len(t, sess.State.Results, 2)

	sess, err = svc.Reset(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepPetInfo, sess.State.Step)
	assert.Empty(t, sess.State.Preference.PetSize)
	assert.Empty(t, repo.items["sess-1"].Results)
}
