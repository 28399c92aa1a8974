package estimator

import (
	"fmt"
	"math"

	"github.com/cognicore/unigram/pkg/unigram/internalerr"
	"github.com/cognicore/unigram/pkg/unigram/vocab"
)

// DefaultEpsilonUnseen is the fraction of probability mass reserved for
// unseen words when none is configured explicitly.
const DefaultEpsilonUnseen = 1e-6

// MLEstimator estimates unigram probabilities by maximum likelihood with
// epsilon-mass smoothing: a fixed fraction of the probability mass is
// reserved and split uniformly across vocabulary words never observed
// during fitting, so the result is a valid PMF that assigns no word zero
// probability.
//
// The vocabulary is shared, not owned; it must outlive the estimator.
// The estimator is not safe for concurrent use.
type MLEstimator struct {
	vocab         *vocab.Vocabulary
	epsilonUnseen float64

	// Fitted state, rebuilt from scratch on every Fit call.
	totalCount  int
	countV      []int
	unseenCount int
	fitted      bool
}

// NewMLEstimator creates an estimator over the given vocabulary.
// epsilonUnseen must lie strictly between 0 and 1.
func NewMLEstimator(v *vocab.Vocabulary, epsilonUnseen float64) (*MLEstimator, error) {
	if v == nil {
		return nil, fmt.Errorf("nil vocabulary: %w", internalerr.ErrInvalidConfig)
	}
	if epsilonUnseen <= 0 || epsilonUnseen >= 1 {
		return nil, fmt.Errorf("epsilon_unseen_proba %g outside (0, 1): %w", epsilonUnseen, internalerr.ErrInvalidConfig)
	}
	return &MLEstimator{
		vocab:         v,
		epsilonUnseen: epsilonUnseen,
	}, nil
}

// Fit counts word occurrences in the given training sequence. Prior
// fitted state is discarded, not accumulated into.
//
// Fit is atomic: every word is resolved against the vocabulary before any
// state changes, so a lookup failure leaves the previous fit intact.
func (e *MLEstimator) Fit(words []string) error {
	ids := make([]int, len(words))
	for i, w := range words {
		id, err := e.vocab.ID(w)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	counts := make([]int, e.vocab.Size())
	for _, id := range ids {
		counts[id]++
	}

	unseen := 0
	for _, c := range counts {
		if c == 0 {
			unseen++
		}
	}

	e.countV = counts
	e.totalCount = len(words)
	e.unseenCount = unseen
	e.fitted = true
	return nil
}

// PredictProba returns the smoothed probability of a single vocabulary
// word. Observed words keep (1 - epsilon) of their maximum-likelihood
// ratio; the reserved epsilon mass is split uniformly across unseen
// words.
//
// Fit must have been called with at least one word first; fitting on an
// empty sequence leaves the estimator unable to predict.
func (e *MLEstimator) PredictProba(word string) (float64, error) {
	id, err := e.vocab.ID(word)
	if err != nil {
		return 0, err
	}
	if !e.fitted || e.totalCount == 0 {
		return 0, fmt.Errorf("predict before fit with training data: %w", internalerr.ErrNotFitted)
	}

	ml := float64(e.countV[id]) / float64(e.totalCount)

	switch {
	case ml > 0:
		return (1 - e.epsilonUnseen) * ml, nil
	case e.unseenCount > 0:
		return e.epsilonUnseen / float64(e.unseenCount), nil
	default:
		// Unreachable given the fit invariants: a zero count implies
		// unseenCount >= 1. Kept so the function is total.
		return 0, nil
	}
}

// Score returns the average natural-log probability per word of the given
// sequence. More negative means a worse fit.
func (e *MLEstimator) Score(words []string) (float64, error) {
	if len(words) == 0 {
		return 0, fmt.Errorf("score on empty word list: %w", internalerr.ErrEmptyInput)
	}

	total := 0.0
	for _, w := range words {
		p, err := e.PredictProba(w)
		if err != nil {
			return 0, err
		}
		total += math.Log(p)
	}
	return total / float64(len(words)), nil
}

// TotalCount returns the number of training words seen by the last Fit.
func (e *MLEstimator) TotalCount() int {
	return e.totalCount
}

// Count returns the training count of the given vocabulary word.
func (e *MLEstimator) Count(word string) (int, error) {
	id, err := e.vocab.ID(word)
	if err != nil {
		return 0, err
	}
	if !e.fitted {
		return 0, fmt.Errorf("count before fit: %w", internalerr.ErrNotFitted)
	}
	return e.countV[id], nil
}

// UnseenCount returns the number of vocabulary words with zero training
// count after the last Fit.
func (e *MLEstimator) UnseenCount() int {
	return e.unseenCount
}

// Fitted reports whether Fit has completed successfully at least once.
func (e *MLEstimator) Fitted() bool {
	return e.fitted
}

var _ Estimator = (*MLEstimator)(nil)
