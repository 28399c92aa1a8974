package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/unigram/pkg/unigram/internalerr"
)

// Vocabulary is an ordered, immutable set of unique words. Each word maps
// to a stable integer id in [0, Size()). Must be constructed with New or
// FromTokens.
type Vocabulary struct {
	words []string
	ids   map[string]int
}

// LookupError reports a word that is not part of the vocabulary. Its
// message format is part of the package contract and matched by callers
// that surface it to users.
type LookupError struct {
	Word string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("Word %s not in the vocabulary", e.Word)
}

// Unwrap lets errors.Is match internalerr.ErrNotFound.
func (e *LookupError) Unwrap() error {
	return internalerr.ErrNotFound
}

// New creates a vocabulary from the given words, preserving their order.
// Duplicate words are rejected.
func New(words []string) (*Vocabulary, error) {
	v := &Vocabulary{
		words: make([]string, 0, len(words)),
		ids:   make(map[string]int, len(words)),
	}
	for _, w := range words {
		if _, ok := v.ids[w]; ok {
			return nil, fmt.Errorf("duplicate word %q: %w", w, internalerr.ErrInvalidConfig)
		}
		v.ids[w] = len(v.words)
		v.words = append(v.words, w)
	}
	return v, nil
}

// FromTokens builds a vocabulary from a token stream, keeping the first
// occurrence of each distinct token in order. Unlike New, repeats are fine.
func FromTokens(tokens []string) *Vocabulary {
	v := &Vocabulary{
		ids: make(map[string]int),
	}
	for _, t := range tokens {
		if _, ok := v.ids[t]; ok {
			continue
		}
		v.ids[t] = len(v.words)
		v.words = append(v.words, t)
	}
	return v
}

// Size returns the number of distinct words.
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// ID returns the integer id of the given word, or a *LookupError when the
// word is absent.
func (v *Vocabulary) ID(word string) (int, error) {
	id, ok := v.ids[word]
	if !ok {
		return 0, &LookupError{Word: word}
	}
	return id, nil
}

// Contains reports whether the word is part of the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.ids[word]
	return ok
}

// Word returns the word with the given id.
func (v *Vocabulary) Word(id int) (string, error) {
	if id < 0 || id >= len(v.words) {
		return "", fmt.Errorf("word id %d out of range [0, %d): %w", id, len(v.words), internalerr.ErrNotFound)
	}
	return v.words[id], nil
}

// Words returns a copy of all words in id order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// LoadFromYAML loads a vocabulary from a YAML file.
//
// Expected format:
//
//	words:
//	  - dinosaur
//	  - trex
//	  - stegosaurus
func LoadFromYAML(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Words []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return New(config.Words)
}
