package reviews

import (
	"context"
	"testing"

	"pet-friendly-stays/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneAccommodation struct{}

func (oneAccommodation) Get(ctx context.Context, id string) (catalog.Accommodation, error) {
	if id != "1" {
		return catalog.Accommodation{}, catalog.ErrNotFound
	}
	return catalog.Accommodation{ID: "1"}, nil
}

func TestSummarize(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)

	s := Summarize(items)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 4.8, s.AverageRating, 1e-9)
	assert.InDelta(t, 4.9, s.AveragePetFriendly, 1e-9)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestFilterBySize(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)

	assert.Len(t, FilterBySize(items, "all"), 3)
	assert.Len(t, FilterBySize(items, ""), 3)
	assert.Len(t, FilterBySize(items, "large"), 2)
	assert.Len(t, FilterBySize(items, "small"), 1)
	assert.Empty(t, FilterBySize(items, "medium"))
}

func TestService_SummaryIgnoresFilter(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)
	svc := NewService(oneAccommodation{}, items)

	res, err := svc.List(context.Background(), "1", "small")
	require.NoError(t, err)
	assert.Len(t, res.Reviews, 1)
	assert.Equal(t, 3, res.Summary.Count)
	assert.Equal(t, "small", res.Filter)

	_, err = svc.List(context.Background(), "1", "giant")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), "42", "")
	assert.ErrorIs(t, err, ErrNotFound)
}
