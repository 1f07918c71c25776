package plans

import (
	"math"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type ChecklistItem struct {
	ID        string   `json:"id" yaml:"id"`
	Category  string   `json:"category" yaml:"category"`
	Item      string   `json:"item" yaml:"item"`
	Completed bool     `json:"completed" yaml:"completed"`
	Priority  Priority `json:"priority" yaml:"priority"`
}

// ScheduleType: accommodation, activity, meal, travel.
type ScheduleType string

type ScheduleItem struct {
	ID       string       `json:"id" yaml:"id"`
	Day      int          `json:"day" yaml:"day"`
	Time     string       `json:"time" yaml:"time"`
	Activity string       `json:"activity" yaml:"activity"`
	Location string       `json:"location" yaml:"location"`
	Duration string       `json:"duration" yaml:"duration"`
	Type     ScheduleType `json:"type" yaml:"type"`
}

type Template struct {
	Checklist []ChecklistItem `yaml:"checklist"`
	Schedule  []ScheduleItem  `yaml:"schedule"`
}

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// ComputeProgress: porcentaje redondeado; lista vacía = 0%.
func ComputeProgress(items []ChecklistItem) Progress {
	p := Progress{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

type CategoryGroup struct {
	Category string          `json:"category"`
	Items    []ChecklistItem `json:"items"`
}

// GroupByCategory respeta el orden de primera aparición.
func GroupByCategory(items []ChecklistItem) []CategoryGroup {
	var out []CategoryGroup
	idx := map[string]int{}
	for _, it := range items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(out)
			idx[it.Category] = i
			out = append(out, CategoryGroup{Category: it.Category})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}

type DaySchedule struct {
	Day   int            `json:"day"`
	Items []ScheduleItem `json:"items"`
}

func GroupByDay(items []ScheduleItem) []DaySchedule {
	var out []DaySchedule
	idx := map[int]int{}
	for _, it := range items {
		i, ok := idx[it.Day]
		if !ok {
			i = len(out)
			idx[it.Day] = i
			out = append(out, DaySchedule{Day: it.Day})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}
