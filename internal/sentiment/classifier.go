package sentiment

import (
	"fmt"
	"math"

	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// Classifier is a multinomial Naive Bayes model over term-frequency vectors.
// All statistics are computed once by FitClassifier and read-only afterwards.
type Classifier struct {
	classes   []domain.Sentiment
	logPriors []float64
	// logLikelihoods[c][t] = log P(token t | class c), Laplace-smoothed so no
	// entry is ever -Inf and a single unseen token cannot zero out a class.
	logLikelihoods [][]float64
	vocabSize      int
}

// FitClassifier estimates class priors and smoothed token likelihoods from
// labeled feature vectors. Every class must be represented by at least one
// example; a missing class is a corpus configuration error, reported here so
// startup can fail fast.
func FitClassifier(vectors []FeatureVector, labels []domain.Sentiment) (*Classifier, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no training examples")
	}
	if len(vectors) != len(labels) {
		return nil, fmt.Errorf("vector/label count mismatch: %d vs %d", len(vectors), len(labels))
	}

	classes := domain.Sentiments()
	classIdx := make(map[domain.Sentiment]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	vocabSize := len(vectors[0])
	classCounts := make([]int, len(classes))
	tokenCounts := make([][]int, len(classes))
	tokenTotals := make([]int, len(classes))
	for i := range tokenCounts {
		tokenCounts[i] = make([]int, vocabSize)
	}

	for i, vec := range vectors {
		if len(vec) != vocabSize {
			return nil, fmt.Errorf("example %d has vector length %d, want %d", i, len(vec), vocabSize)
		}
		ci, ok := classIdx[labels[i]]
		if !ok {
			return nil, fmt.Errorf("example %d has unknown label %q", i, labels[i])
		}
		classCounts[ci]++
		for t, n := range vec {
			tokenCounts[ci][t] += n
			tokenTotals[ci] += n
		}
	}

	for i, c := range classes {
		if classCounts[i] == 0 {
			return nil, fmt.Errorf("class %q has no training examples", c)
		}
	}

	clf := &Classifier{
		classes:        classes,
		logPriors:      make([]float64, len(classes)),
		logLikelihoods: make([][]float64, len(classes)),
		vocabSize:      vocabSize,
	}
	total := float64(len(vectors))
	for ci := range classes {
		clf.logPriors[ci] = math.Log(float64(classCounts[ci]) / total)
		clf.logLikelihoods[ci] = make([]float64, vocabSize)
		denom := float64(tokenTotals[ci] + vocabSize)
		for t := 0; t < vocabSize; t++ {
			clf.logLikelihoods[ci][t] = math.Log(float64(tokenCounts[ci][t]+1) / denom)
		}
	}
	return clf, nil
}

// LogScores returns the unnormalized log-posterior of each class for a
// vector, indexed like domain.Sentiments(). Only nonzero counts contribute,
// so an all-zero vector scores on priors alone.
func (c *Classifier) LogScores(vec FeatureVector) []float64 {
	scores := make([]float64, len(c.classes))
	for ci := range c.classes {
		score := c.logPriors[ci]
		for t, n := range vec {
			if n == 0 || t >= c.vocabSize {
				continue
			}
			score += float64(n) * c.logLikelihoods[ci][t]
		}
		scores[ci] = score
	}
	return scores
}

// Predict returns the most probable label. Exact ties resolve to the first
// class in precedence order because only a strictly greater score replaces
// the running maximum.
func (c *Classifier) Predict(vec FeatureVector) domain.Sentiment {
	scores := c.LogScores(vec)
	best := 0
	for ci := 1; ci < len(scores); ci++ {
		if scores[ci] > scores[best] {
			best = ci
		}
	}
	return c.classes[best]
}
