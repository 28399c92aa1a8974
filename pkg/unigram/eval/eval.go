// Package eval scores fitted estimators on held-out documents and
// reports per-document and corpus-level quality numbers.
package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cognicore/unigram/pkg/unigram/corpus"
	"github.com/cognicore/unigram/pkg/unigram/estimator"
	"github.com/cognicore/unigram/pkg/unigram/internalerr"
)

// Result is the evaluation of a single document.
type Result struct {
	DocID      string
	Source     string
	Tokens     int
	LogProb    float64 // average natural-log probability per token
	Perplexity float64
}

// Summary aggregates per-document results. The corpus-level numbers
// weight each document by its token count, so they match evaluating the
// concatenated corpus.
type Summary struct {
	Docs          int
	Tokens        int
	MeanLogProb   float64 // token-weighted
	StdDevLogProb float64 // across documents, unweighted
	Perplexity    float64
}

// Perplexity converts an average log probability to perplexity.
func Perplexity(avgLogProb float64) float64 {
	return math.Exp(-avgLogProb)
}

// Documents scores each held-out document with the fitted estimator.
// Documents with no tokens are rejected, matching the estimator's
// empty-input contract.
func Documents(est estimator.Estimator, docs []corpus.Document) ([]Result, Summary, error) {
	if len(docs) == 0 {
		return nil, Summary{}, fmt.Errorf("no documents to evaluate: %w", internalerr.ErrEmptyInput)
	}

	results := make([]Result, 0, len(docs))
	scores := make([]float64, 0, len(docs))
	weights := make([]float64, 0, len(docs))
	totalTokens := 0

	for _, d := range docs {
		score, err := est.Score(d.Tokens)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("score document %s: %w", d.ID, err)
		}
		results = append(results, Result{
			DocID:      d.ID,
			Source:     d.Source,
			Tokens:     len(d.Tokens),
			LogProb:    score,
			Perplexity: Perplexity(score),
		})
		scores = append(scores, score)
		weights = append(weights, float64(len(d.Tokens)))
		totalTokens += len(d.Tokens)
	}

	mean := stat.Mean(scores, weights)
	sum := Summary{
		Docs:        len(results),
		Tokens:      totalTokens,
		MeanLogProb: mean,
		Perplexity:  Perplexity(mean),
	}
	if len(scores) > 1 {
		sum.StdDevLogProb = stat.StdDev(scores, nil)
	}
	return results, sum, nil
}
