package reports

import (
	"math"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

type Stay struct {
	Name             string  `json:"name" yaml:"name"`
	Location         string  `json:"location" yaml:"location"`
	Nights           int     `json:"nights" yaml:"nights"`
	PetFriendlyScore float64 `json:"pet_friendly_score" yaml:"pet_friendly_score"`
}

type Activity struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Location string `json:"location" yaml:"location"`
}

// Report es el resumen de un viaje ya hecho.
type Report struct {
	ID             string     `json:"id" yaml:"id"`
	PetName        string     `json:"pet_name" yaml:"pet_name"`
	Destination    string     `json:"destination" yaml:"destination"`
	StartDate      string     `json:"start_date" yaml:"start_date"`
	EndDate        string     `json:"end_date" yaml:"end_date"`
	Accommodations []Stay     `json:"accommodations" yaml:"accommodations"`
	Activities     []Activity `json:"activities" yaml:"activities"`
	Photos         []string   `json:"photos" yaml:"photos"`
	TotalDistance  float64    `json:"total_distance" yaml:"total_distance"`
	Highlights     []string   `json:"highlights" yaml:"highlights"`
}

func (r Report) Nights() int {
	n := 0
	for _, s := range r.Accommodations {
		n += s.Nights
	}
	return n
}

// Days cuenta ambos extremos (15 al 17 = 3 días). Fechas inválidas = 0.
func (r Report) Days() int {
	start, err1 := time.Parse(dateLayout, r.StartDate)
	end, err2 := time.Parse(dateLayout, r.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

type ActivityCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Trips int    `json:"trips"`
}

type Summary struct {
	TotalTrips          int             `json:"total_trips"`
	TotalNights         int             `json:"total_nights"`
	TotalDays           int             `json:"total_days"`
	TotalActivities     int             `json:"total_activities"`
	TotalDistance       float64         `json:"total_distance"`
	AvgPetFriendlyScore float64         `json:"avg_pet_friendly_score"`
	Destinations        []string        `json:"destinations"`
	TopActivityTypes    []ActivityCount `json:"top_activity_types"`
	MonthlyTrips        []MonthCount    `json:"monthly_trips"`
}

// Summarize agrega todos los reportes. El score promedio es por estadía, no por viaje.
func Summarize(items []Report) Summary {
	s := Summary{
		TotalTrips:       len(items),
		Destinations:     []string{},
		TopActivityTypes: []ActivityCount{},
		MonthlyTrips:     []MonthCount{},
	}

	var scoreSum float64
	var stays int
	seenDest := map[string]bool{}
	byType := map[string]int{}
	byMonth := map[string]int{}

	for _, r := range items {
		s.TotalNights += r.Nights()
		s.TotalDays += r.Days()
		s.TotalActivities += len(r.Activities)
		s.TotalDistance += r.TotalDistance

		for _, st := range r.Accommodations {
			scoreSum += st.PetFriendlyScore
			stays++
		}
		if !seenDest[r.Destination] {
			seenDest[r.Destination] = true
			s.Destinations = append(s.Destinations, r.Destination)
		}
		for _, a := range r.Activities {
			byType[a.Type]++
		}
		if len(r.StartDate) >= 7 {
			byMonth[r.StartDate[:7]]++
		}
	}

	if stays > 0 {
		s.AvgPetFriendlyScore = math.Round(scoreSum/float64(stays)*10) / 10
	}
	s.TotalDistance = math.Round(s.TotalDistance*10) / 10

	for t, n := range byType {
		s.TopActivityTypes = append(s.TopActivityTypes, ActivityCount{Type: t, Count: n})
	}
	sort.Slice(s.TopActivityTypes, func(i, j int) bool {
		a, b := s.TopActivityTypes[i], s.TopActivityTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Type < b.Type
	})

	for m, n := range byMonth {
		s.MonthlyTrips = append(s.MonthlyTrips, MonthCount{Month: m, Trips: n})
	}
	sort.Slice(s.MonthlyTrips, func(i, j int) bool { return s.MonthlyTrips[i].Month < s.MonthlyTrips[j].Month })

	return s
}
