package reports

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSummarize_Seed(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)

	s := Summarize(items)
	assert.Equal(t, 2, s.TotalTrips)
	assert.Equal(t, 5, s.TotalNights)
	assert.Equal(t, 7, s.TotalDays)
	assert.Equal(t, 6, s.TotalActivities)
	assert.InDelta(t, 123.8, s.TotalDistance, 1e-9)
	assert.InDelta(t, 4.95, s.AvgPetFriendlyScore, 0.051)
	assert.Equal(t, []string{"Gangneung seaside trip", "Jeju healing trip"}, s.Destinations)
	assert.Equal(t, ActivityCount{Type: "swimming", Count: 2}, s.TopActivityTypes[0])
	assert.Equal(t, []MonthCount{{Month: "2024-06", Trips: 1}, {Month: "2024-07", Trips: 1}}, s.MonthlyTrips)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalTrips)
	assert.Zero(t, s.AvgPetFriendlyScore)
	assert.Empty(t, s.Destinations)
}

func TestReport_DaysInvalidDates(t *testing.T) {
	assert.Equal(t, 0, Report{StartDate: "2024-07-04", EndDate: "2024-07-01"}.Days())
	assert.Equal(t, 0, Report{StartDate: "yesterday"}.Days())
	assert.Equal(t, 1, Report{StartDate: "2024-07-01", EndDate: "2024-07-01"}.Days())
}

func TestExport_Workbook(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)

	data, err := Export(items[1])
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetOverview, sheetAccommodations, sheetActivities}, f.GetSheetList())

	overview, err := f.GetRows(sheetOverview)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pet", "Coco"}, overview[0])
	assert.Equal(t, []string{"Nights", "3"}, overview[5])

	stays, err := f.GetRows(sheetAccommodations)
	require.NoError(t, err)
	require.Len(t, stays, 2)
	assert.Equal(t, "Jeju Pet Pool Villa", stays[1][0])

	acts, err := f.GetRows(sheetActivities)
	require.NoError(t, err)
	assert.Len(t, acts, 4)
}

func TestService_ExportUnknown(t *testing.T) {
	items, err := Seed()
	require.NoError(t, err)
	svc := NewService(items)

	_, _, err = svc.Export(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNotFound)

	data, name, err := svc.Export(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "travel-report-1.xlsx", name)
}
