package vets

import (
	"net/url"
	"strings"
)

type Hospital struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Address          string   `json:"address" yaml:"address"`
	Phone            string   `json:"phone" yaml:"phone"`
	Distance         string   `json:"distance" yaml:"distance"`
	TravelTime       string   `json:"travel_time" yaml:"travel_time"`
	Rating           float64  `json:"rating" yaml:"rating"`
	ReviewCount      int      `json:"review_count" yaml:"review_count"`
	IsOpen           bool     `json:"is_open" yaml:"is_open"`
	OpenHours        string   `json:"open_hours" yaml:"open_hours"`
	EmergencyService bool     `json:"emergency_service" yaml:"emergency_service"`
	Specialties      []string `json:"specialties" yaml:"specialties"`
	Description      string   `json:"description" yaml:"description"`
}

const directionsBase = "https://map.kakao.com/link/to/"

// CallURL arma el link tel: conservando sólo dígitos, '+' y guiones.
func CallURL(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}

func DirectionsURL(address string) string {
	return directionsBase + url.PathEscape(strings.TrimSpace(address))
}
