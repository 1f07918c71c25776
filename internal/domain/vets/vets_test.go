package vets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-friendly-stays/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder map[string]catalog.Accommodation

func (f fakeFinder) Get(ctx context.Context, id string) (catalog.Accommodation, error) {
	a, ok := f[id]
	if !ok {
		return catalog.Accommodation{}, catalog.ErrNotFound
	}
	return a, nil
}

func TestCallURL(t *testing.T) {
	assert.Equal(t, "tel:033-123-4567", CallURL("033-123-4567"))
	assert.Equal(t, "tel:033123-4567", CallURL(" (033) 123-4567 "))
	assert.Equal(t, "tel:+82-33-123", CallURL("+82 33-123"))
}

func TestDirectionsURL(t *testing.T) {
	got := DirectionsURL("123 Haean-ro, Gangneung-si")
	assert.Equal(t, "https://map.kakao.com/link/to/123%20Haean-ro%2C%20Gangneung-si", got)
}

func TestSeed(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].EmergencyService)
	assert.False(t, items[1].IsOpen)
}

func TestService_NearbyWaitsConfiguredDelay(t *testing.T) {
	hospitals, err := Seed()
	require.NoError(t, err)

	finder := fakeFinder{"1": {ID: "1", Name: "Ocean View Pet Resort", Location: "Gangneung"}}
	svc := NewService(finder, hospitals, time.Second, nil)

	var waited time.Duration
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		waited = d
		return nil
	}

	res, err := svc.Nearby(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, time.Second, waited)
	assert.Equal(t, "Ocean View Pet Resort", res.AccommodationName)
	assert.Len(t, res.Hospitals, 3)
}

func TestService_NearbyUnknownAccommodation(t *testing.T) {
	svc := NewService(fakeFinder{}, nil, time.Second, nil)
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		t.Fatal("should not wait for an unknown accommodation")
		return nil
	}

	_, err := svc.Nearby(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSleepCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepCtx(ctx, time.Hour)
	assert.True(t, errors.Is(err, context.Canceled))
}
