package sentiment

import (
	"encoding/json"
	"fmt"
	"os"

	_ "embed"

	"github.com/pscheid92/feedbackpulse/internal/domain"
)

//go:embed corpus.json
var defaultCorpus []byte

// DefaultCorpus returns the built-in reference corpus. The content is
// configuration data shipped with the binary; it is never extended from
// user-submitted feedback at runtime.
func DefaultCorpus() ([]domain.TrainingExample, error) {
	return parseCorpus(defaultCorpus)
}

// LoadCorpus reads a reference corpus from a JSON file, for deployments that
// override the built-in examples.
func LoadCorpus(path string) ([]domain.TrainingExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	examples, err := parseCorpus(data)
	if err != nil {
		return nil, fmt.Errorf("invalid corpus file %s: %w", path, err)
	}
	return examples, nil
}

func parseCorpus(data []byte) ([]domain.TrainingExample, error) {
	var examples []domain.TrainingExample
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	for i, ex := range examples {
		if ex.Text == "" {
			return nil, fmt.Errorf("example %d has empty text", i)
		}
		if _, err := domain.ParseSentiment(string(ex.Label)); err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
	}
	return examples, nil
}
