// ABOUTME: Curated scoring tables and their optional YAML override
// ABOUTME: Source credibility weights and per-topic disambiguation blocklists

package relevance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultSourceWeight applies to sources absent from the credibility table.
const defaultSourceWeight = 0.5

func defaultSourceWeights() map[string]float64 {
	return map[string]float64{
		"GitHub":           1.0,
		"Lobsters":         0.95,
		"ArXiv":            0.9,
		"Semantic Scholar": 0.85,
		"OpenAlex":         0.85,
		"Hacker News":      0.8,
		"Product Hunt":     0.7,
		"Reddit":           0.6,
		"Dev.to":           0.5,
	}
}

// defaultNegativeKeywords maps lowercased topic names to terms that signal
// an unrelated meaning of the topic word.
func defaultNegativeKeywords() map[string][]string {
	return map[string][]string{
		"python": {"monty", "snake", "reptile", "circus"},
		"rust":   {"game", "corrosion", "metal", "oxide"},
		"go":     {"game", "chess", "board"},
		"java":   {"coffee", "island"},
		"ruby":   {"gem", "stone", "jewelry"},
		"swift":  {"taylor", "bird"},
		"dart":   {"game", "arrow"},
	}
}

// TablesConfig is the YAML shape for overriding the curated tables.
type TablesConfig struct {
	// SourceWeights maps source names to credibility weights in [0,1]
	SourceWeights map[string]float64 `yaml:"source_weights"`

	// NegativeKeywords maps topic names to disambiguation blocklists
	NegativeKeywords map[string][]string `yaml:"negative_keywords"`
}

// NewScorerFromFile builds a scorer whose tables are overridden by the
// given YAML file. Entries in the file replace the defaults per key;
// keys absent from the file keep their default value.
func NewScorerFromFile(path string) (*Scorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring config: %w", err)
	}

	var cfg TablesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scoring config: %w", err)
	}

	return NewScorerWithTables(cfg), nil
}

// NewScorerWithTables merges the given tables over the defaults.
func NewScorerWithTables(cfg TablesConfig) *Scorer {
	scorer := NewScorer()
	for source, weight := range cfg.SourceWeights {
		scorer.sourceWeights[source] = weight
	}
	for topic, keywords := range cfg.NegativeKeywords {
		scorer.negativeKeywords[topic] = keywords
	}
	return scorer
}
