package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/unigram/pkg/unigram/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadTrain(t *testing.T) {
	path := writeConfig(t, `
corpus_db: corpus.db
vocab_path: vocab.yaml
epsilon_unseen: 0.1
heldout_fraction: 0.25
stopwords: [the, a]
`)

	cfg, err := LoadTrain(path)
	if err != nil {
		t.Fatalf("LoadTrain: %v", err)
	}
	if cfg.CorpusDB != "corpus.db" {
		t.Errorf("CorpusDB = %q, want corpus.db", cfg.CorpusDB)
	}
	if cfg.EpsilonUnseen != 0.1 {
		t.Errorf("EpsilonUnseen = %g, want 0.1", cfg.EpsilonUnseen)
	}
	if cfg.HeldoutFraction != 0.25 {
		t.Errorf("HeldoutFraction = %g, want 0.25", cfg.HeldoutFraction)
	}
	if len(cfg.Stopwords) != 2 {
		t.Errorf("Stopwords = %v, want 2 entries", cfg.Stopwords)
	}
}

func TestLoadTrainDefaults(t *testing.T) {
	path := writeConfig(t, "corpus_db: corpus.db\n")

	cfg, err := LoadTrain(path)
	if err != nil {
		t.Fatalf("LoadTrain: %v", err)
	}
	if cfg.EpsilonUnseen != DefaultEpsilonUnseen {
		t.Errorf("EpsilonUnseen = %g, want default %g", cfg.EpsilonUnseen, DefaultEpsilonUnseen)
	}
	if cfg.HeldoutFraction != DefaultHeldoutFraction {
		t.Errorf("HeldoutFraction = %g, want default %g", cfg.HeldoutFraction, DefaultHeldoutFraction)
	}
}

func TestLoadTrainValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing corpus_db", "epsilon_unseen: 0.1\n"},
		{"epsilon too big", "corpus_db: c.db\nepsilon_unseen: 1.0\n"},
		{"epsilon negative", "corpus_db: c.db\nepsilon_unseen: -0.1\n"},
		{"heldout too big", "corpus_db: c.db\nheldout_fraction: 1.0\n"},
	}

	for _, c := range cases {
		path := writeConfig(t, c.content)
		if _, err := LoadTrain(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", c.name, err)
		}
	}
}

func TestLoadTrainMissingFile(t *testing.T) {
	if _, err := LoadTrain(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
