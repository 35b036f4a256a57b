package domain

import "fmt"

// Sentiment is the label assigned to a feedback comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Sentiments lists all labels in precedence order. Predictions that tie on
// score resolve to the first label in this order, so the order is part of the
// classifier contract, not a cosmetic choice.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// ParseSentiment converts a stored string back into a Sentiment.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return Sentiment(s), nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

// TrainingExample is one labeled text from the reference corpus.
type TrainingExample struct {
	Text  string    `json:"text"`
	Label Sentiment `json:"label"`
}

// SentimentClassifier labels arbitrary text. Implementations must be safe for
// concurrent use and must always return one of the three labels.
type SentimentClassifier interface {
	Classify(text string) Sentiment
}
