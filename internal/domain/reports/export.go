package reports

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetOverview       = "Overview"
	sheetAccommodations = "Accommodations"
	sheetActivities     = "Activities"
)

// Export genera un libro XLSX con tres hojas: resumen, estadías y actividades.
func Export(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return nil, errors.Wrap(err, "export: rename sheet")
	}
	for _, name := range []string{sheetAccommodations, sheetActivities} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrapf(err, "export: new sheet %s", name)
		}
	}

	overview := [][]any{
		{"Pet", r.PetName},
		{"Destination", r.Destination},
		{"Start date", r.StartDate},
		{"End date", r.EndDate},
		{"Days", r.Days()},
		{"Nights", r.Nights()},
		{"Distance (km)", r.TotalDistance},
		{"Activities", len(r.Activities)},
	}
	for _, h := range r.Highlights {
		overview = append(overview, []any{"Highlight", h})
	}
	if err := writeRows(f, sheetOverview, overview); err != nil {
		return nil, err
	}

	stays := [][]any{{"Name", "Location", "Nights", "Pet-friendly score"}}
	for _, s := range r.Accommodations {
		stays = append(stays, []any{s.Name, s.Location, s.Nights, s.PetFriendlyScore})
	}
	if err := writeRows(f, sheetAccommodations, stays); err != nil {
		return nil, err
	}

	acts := [][]any{{"Name", "Type", "Location"}}
	for _, a := range r.Activities {
		acts = append(acts, []any{a.Name, a.Type, a.Location})
	}
	if err := writeRows(f, sheetActivities, acts); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "export: write")
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "export: cell name")
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "export: %s row %d", sheet, i+1)
		}
	}
	return nil
}
