package sentiment

import (
	"sync"
	"testing"

	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultService(t *testing.T) *Service {
	t.Helper()

	corpus, err := DefaultCorpus()
	require.NoError(t, err)
	svc, err := NewService(corpus)
	require.NoError(t, err)
	return svc
}

func TestNewService_EmptyCorpus(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func TestNewService_MissingClass(t *testing.T) {
	corpus := []domain.TrainingExample{
		{Text: "love it", Label: domain.SentimentPositive},
		{Text: "hate it", Label: domain.SentimentNegative},
	}
	_, err := NewService(corpus)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Neutral")
}

func TestClassify_EndToEnd(t *testing.T) {
	svc := newDefaultService(t)

	assert.Equal(t, domain.SentimentPositive, svc.Classify("Great quality and fast delivery. Recommended!"))
	assert.Equal(t, domain.SentimentNegative, svc.Classify("Awful! Don't buy this, it's a scam."))
	assert.Equal(t, domain.SentimentPositive, svc.Classify("This is an amazing product!"))
	assert.Equal(t, domain.SentimentNegative, svc.Classify("Terrible experience, waste of money."))
	assert.Equal(t, domain.SentimentNeutral, svc.Classify("The product is okay, nothing special."))
}

func TestClassify_AlwaysReturnsKnownLabel(t *testing.T) {
	svc := newDefaultService(t)

	inputs := []string{
		"",
		"   ",
		"!!!???...",
		"xyzzy qwfp zzqq",
		"\x00\x01\x02 binary junk \xff",
	}
	for _, input := range inputs {
		label := svc.Classify(input)
		_, err := domain.ParseSentiment(string(label))
		assert.NoError(t, err, "input %q", input)
	}
}

func TestClassify_UnknownTokensFallBackToPriors(t *testing.T) {
	// The default corpus has equal class counts, so an all-unknown text ties
	// on priors and resolves by precedence.
	svc := newDefaultService(t)
	assert.Equal(t, domain.SentimentPositive, svc.Classify("xyzzy qwfp"))
}

func TestClassify_Deterministic(t *testing.T) {
	svc := newDefaultService(t)

	text := "Bad quality, not recommended."
	first := svc.Classify(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, svc.Classify(text))
	}
	assert.Equal(t, domain.SentimentNegative, first)
}

func TestClassify_Concurrent(t *testing.T) {
	svc := newDefaultService(t)

	texts := []string{
		"I love this product!",
		"Terrible experience.",
		"It works but could be better.",
	}
	want := []domain.Sentiment{
		domain.SentimentPositive,
		domain.SentimentNegative,
		domain.SentimentNeutral,
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx := i % len(texts)
			assert.Equal(t, want[idx], svc.Classify(texts[idx]))
		}(i)
	}
	wg.Wait()
}

func TestProbabilities_SumToOne(t *testing.T) {
	svc := newDefaultService(t)

	probs := svc.Probabilities("Great quality and fast delivery.")
	require.Len(t, probs, 3)

	var sum float64
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, probs[domain.SentimentPositive], probs[domain.SentimentNegative])
}

func TestVocabularySize_DefaultCorpus(t *testing.T) {
	svc := newDefaultService(t)
	assert.Greater(t, svc.VocabularySize(), 100)
}
