package catalog

// ScoreGrade traduce el pet-friendly score (0-5) a una etiqueta editorial.
type ScoreGrade struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func GradeScore(score float64) ScoreGrade {
	switch {
	case score >= 4.5:
		return ScoreGrade{
			Level:       "excellent",
			Title:       "Excellent",
			Description: "Top-tier facilities and services for pets: dedicated spaces, premium amenities and professional care.",
		}
	case score >= 4.0:
		return ScoreGrade{
			Level:       "very_good",
			Title:       "Very good",
			Description: "Very well suited for travelling with pets, with ample amenities and a safe environment.",
		}
	case score >= 3.5:
		return ScoreGrade{
			Level:       "average",
			Title:       "Average",
			Description: "Basic pet amenities, fine for an ordinary trip.",
		}
	default:
		return ScoreGrade{
			Level:       "needs_improvement",
			Title:       "Needs improvement",
			Description: "Limited pet facilities; extra preparation may be needed.",
		}
	}
}
