// Package estimator provides probability estimators over a fixed
// vocabulary of words. Estimators share a common fit/predict/score
// contract so callers can swap implementations without changing the
// training or evaluation code around them.
package estimator

// Estimator is the common contract for unigram probability estimators.
type Estimator interface {
	// Fit trains the estimator on the given word sequence, fully
	// replacing any previously fitted state.
	Fit(words []string) error

	// PredictProba returns the estimated probability of a single word
	// under the fitted model.
	PredictProba(word string) (float64, error)

	// Score returns the average natural-log probability per word of the
	// given sequence.
	Score(words []string) (float64, error)
}
