// Package summarizer scores sentences with independent heuristics and
// extracts the highest scoring ones as a summary.
package summarizer

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"exsum/internal/domain"
)

// Options selects which features contribute to a sentence's score.
type Options struct {
	// Features are summed in this order. Empty means DefaultFeatures.
	Features      []string
	ThematicWords int
	// Parallel scores features concurrently.
	Parallel bool
}

// Summarizer is a feature-based extractive summarizer.
type Summarizer struct {
	features []Feature
	parallel bool
	logger   *slog.Logger
}

// Scores is the per-feature breakdown for one document.
type Scores struct {
	Sentences []domain.Sentence
	Features  []string
	Vectors   []Vector // Vectors[k] belongs to Features[k]
	Total     Vector
}

// New builds a summarizer from options. A nil logger discards output.
func New(opts Options, logger *slog.Logger) (*Summarizer, error) {
	names := opts.Features
	if len(names) == 0 {
		names = DefaultFeatures()
	}
	features := make([]Feature, 0, len(names))
	for _, name := range names {
		f, err := NewFeature(name, opts.ThematicWords)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return NewWithFeatures(features, opts.Parallel, logger), nil
}

// NewWithFeatures builds a summarizer from explicit scorers.
func NewWithFeatures(features []Feature, parallel bool, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Summarizer{
		features: features,
		parallel: parallel,
		logger:   logger.With("component", "summarizer"),
	}
}

// FeatureNames returns the enabled features in summation order.
func (s *Summarizer) FeatureNames() []string {
	names := make([]string, len(s.features))
	for i, f := range s.features {
		names[i] = f.Name()
	}
	return names
}

// Summarize returns at most topN sentences of document. A non-positive topN
// or an empty document yields an empty result.
func (s *Summarizer) Summarize(document []domain.Sentence, topN int, reorder bool) ([]domain.Sentence, error) {
	if topN <= 0 {
		return nil, nil
	}
	scores, err := s.Score(document)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		return nil, nil
	}
	return SelectTop(scores.Sentences, scores.Total, topN, reorder)
}

// Score runs every enabled feature over document. It returns nil scores for
// a document without sentences.
func (s *Summarizer) Score(document []domain.Sentence) (*Scores, error) {
	if err := domain.ValidateDocument(document); err != nil {
		return nil, err
	}
	p := Preprocess(document)
	if p == nil {
		s.logger.Debug("nothing to summarize")
		return nil, nil
	}
	vectors, err := s.scoreFeatures(p)
	if err != nil {
		return nil, err
	}
	total, err := Aggregate(vectors...)
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		total = make(Vector, p.NumSentences())
	}
	return &Scores{
		Sentences: p.Original,
		Features:  s.FeatureNames(),
		Vectors:   vectors,
		Total:     total,
	}, nil
}

func (s *Summarizer) scoreFeatures(p *Preprocessed) ([]Vector, error) {
	vectors := make([]Vector, len(s.features))
	run := func(k int) error {
		f := s.features[k]
		start := time.Now()
		v, err := f.Score(p)
		if err != nil {
			return fmt.Errorf("feature %s: %w", f.Name(), err)
		}
		if len(v) != p.NumSentences() {
			return fmt.Errorf("feature %s returned %d values for %d sentences: %w", f.Name(), len(v), p.NumSentences(), ErrLengthMismatch)
		}
		vectors[k] = v
		s.logger.Debug("feature scored", "feature", f.Name(), "sentences", len(v), "elapsed", time.Since(start))
		return nil
	}
	if !s.parallel {
		for k := range s.features {
			if err := run(k); err != nil {
				return nil, err
			}
		}
		return vectors, nil
	}
	var g errgroup.Group
	for k := range s.features {
		k := k
		g.Go(func() error { return run(k) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

var _ domain.Summarizer = (*Summarizer)(nil)
