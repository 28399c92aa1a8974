// Package ingest turns raw text into the word sequences the estimator
// and vocabulary consume.
package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into lowercase word tokens. Unlike retrieval
// pipelines, language modeling keeps every token, so stopword filtering
// is off unless a stopword list is provided.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer. A nil or empty stopword list keeps
// all tokens.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized tokens. A token is a maximal run
// of letters, digits, apostrophes, and interior hyphens, lowercased.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			if word := t.processToken(current.String()); word != "" {
				tokens = append(tokens, word)
			}
			current.Reset()
		}
	}
	if current.Len() > 0 {
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// Filter applies stopword filtering to an already tokenized sequence.
func (t *Tokenizer) Filter(tokens []string) []string {
	if len(t.stopwords) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := t.stopwords[tok]; !ok {
			out = append(out, tok)
		}
	}
	return out
}

// processToken cleans a raw token and applies stopword filtering.
func (t *Tokenizer) processToken(token string) string {
	word := strings.Trim(token, "-'")
	if word == "" {
		return ""
	}
	if _, ok := t.stopwords[word]; ok {
		return ""
	}
	return word
}
