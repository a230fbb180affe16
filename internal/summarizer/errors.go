package summarizer

import "errors"

var (
	// ErrLengthMismatch means score vectors and sentences are not index-aligned.
	ErrLengthMismatch = errors.New("score vector length does not match sentence count")
	// ErrMissingFrequency means a scored lemma was never counted during preprocessing.
	ErrMissingFrequency = errors.New("lemma missing from frequency table")
	// ErrUnknownFeature is returned for a feature name with no scorer.
	ErrUnknownFeature = errors.New("unknown feature")
)
