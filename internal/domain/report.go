package domain

// Percentages holds the share of each label, rounded to one decimal place.
type Percentages struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Summary aggregates stored sentiment labels for reporting. Percentages is
// nil when Total is zero; callers render a "no data" state instead.
type Summary struct {
	Positive    int          `json:"positive"`
	Negative    int          `json:"negative"`
	Neutral     int          `json:"neutral"`
	Total       int          `json:"total"`
	Percentages *Percentages `json:"percentages,omitempty"`
}
