package sentiment

import (
	"fmt"
	"math"

	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// Service owns the trained vocabulary and classifier for the process
// lifetime. Construct it once at startup; there is no partial or degraded
// mode, a training failure means the process must not serve classification
// requests.
type Service struct {
	vocab *Vocabulary
	model *Classifier
}

var _ domain.SentimentClassifier = (*Service)(nil)

// NewService trains the pipeline on the given reference corpus.
func NewService(corpus []domain.TrainingExample) (*Service, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("reference corpus is empty")
	}

	texts := make([]string, len(corpus))
	labels := make([]domain.Sentiment, len(corpus))
	for i, ex := range corpus {
		texts[i] = ex.Text
		labels[i] = ex.Label
	}

	vocab := FitVocabulary(texts)
	vectors := make([]FeatureVector, len(texts))
	for i, text := range texts {
		vectors[i] = vocab.Transform(text)
	}

	model, err := FitClassifier(vectors, labels)
	if err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}

	return &Service{vocab: vocab, model: model}, nil
}

// Classify labels arbitrary text. It never fails: unknown or empty input
// degrades to an all-zero vector and the class priors decide.
func (s *Service) Classify(text string) domain.Sentiment {
	return s.model.Predict(s.vocab.Transform(text))
}

// Probabilities returns the posterior probability of each label for a text,
// normalized with log-sum-exp to stay finite.
func (s *Service) Probabilities(text string) map[domain.Sentiment]float64 {
	scores := s.model.LogScores(s.vocab.Transform(text))

	maxScore := scores[0]
	for _, sc := range scores[1:] {
		if sc > maxScore {
			maxScore = sc
		}
	}
	var sum float64
	exps := make([]float64, len(scores))
	for i, sc := range scores {
		exps[i] = math.Exp(sc - maxScore)
		sum += exps[i]
	}

	probs := make(map[domain.Sentiment]float64, len(scores))
	for i, c := range domain.Sentiments() {
		probs[c] = exps[i] / sum
	}
	return probs
}

// VocabularySize reports the number of tokens the model was trained with.
func (s *Service) VocabularySize() int {
	return s.vocab.Size()
}
