// Package config loads run configuration for the training and ingest
// tools from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/unigram/pkg/unigram/internalerr"
)

// Train configures a training run.
type Train struct {
	// CorpusDB is the path to the SQLite corpus database.
	CorpusDB string `yaml:"corpus_db"`

	// VocabPath optionally points to a YAML vocabulary file. When empty
	// the vocabulary is built from the training split itself.
	VocabPath string `yaml:"vocab_path"`

	// EpsilonUnseen is the probability mass reserved for unseen words,
	// strictly between 0 and 1.
	EpsilonUnseen float64 `yaml:"epsilon_unseen"`

	// HeldoutFraction is the fraction of documents held out for
	// evaluation, in [0, 1).
	HeldoutFraction float64 `yaml:"heldout_fraction"`

	// Stopwords are dropped during tokenization. Usually empty for
	// language modeling.
	Stopwords []string `yaml:"stopwords"`
}

// Defaults used when fields are omitted from the file.
const (
	DefaultEpsilonUnseen   = 1e-6
	DefaultHeldoutFraction = 0.2
)

// LoadTrain reads and validates a training configuration.
func LoadTrain(path string) (*Train, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Train{
		EpsilonUnseen:   DefaultEpsilonUnseen,
		HeldoutFraction: DefaultHeldoutFraction,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Train) Validate() error {
	if c.CorpusDB == "" {
		return fmt.Errorf("corpus_db is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.EpsilonUnseen <= 0 || c.EpsilonUnseen >= 1 {
		return fmt.Errorf("epsilon_unseen %g outside (0, 1): %w", c.EpsilonUnseen, internalerr.ErrInvalidConfig)
	}
	if c.HeldoutFraction < 0 || c.HeldoutFraction >= 1 {
		return fmt.Errorf("heldout_fraction %g outside [0, 1): %w", c.HeldoutFraction, internalerr.ErrInvalidConfig)
	}
	return nil
}
