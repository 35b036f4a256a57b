// Package report computes aggregate sentiment statistics for the admin
// dashboard. Pure functions over label collections; callers are responsible
// for fetching a consistent snapshot of stored labels first.
package report

import (
	"math"

	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// Summarize counts labels and derives per-class percentages rounded to one
// decimal place. With no input there are no percentages: the summary carries
// zero counts and a nil Percentages so callers never divide by zero.
func Summarize(labels []domain.Sentiment) domain.Summary {
	summary := domain.Summary{Total: len(labels)}
	for _, label := range labels {
		switch label {
		case domain.SentimentPositive:
			summary.Positive++
		case domain.SentimentNegative:
			summary.Negative++
		case domain.SentimentNeutral:
			summary.Neutral++
		}
	}

	if summary.Total == 0 {
		return summary
	}

	total := float64(summary.Total)
	summary.Percentages = &domain.Percentages{
		Positive: roundOneDecimal(float64(summary.Positive) / total * 100),
		Negative: roundOneDecimal(float64(summary.Negative) / total * 100),
		Neutral:  roundOneDecimal(float64(summary.Neutral) / total * 100),
	}
	return summary
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
