package summarizer

import (
	"cmp"
	"fmt"
	"slices"

	"exsum/internal/domain"
)

type scoredSentence struct {
	sentence domain.Sentence
	index    int
	score    float64
}

// byScore orders highest score first; equal scores keep document order.
func byScore(a, b scoredSentence) int {
	if c := cmp.Compare(b.score, a.score); c != 0 {
		return c
	}
	return cmp.Compare(a.index, b.index)
}

// byPosition orders by original document index.
func byPosition(a, b scoredSentence) int {
	return cmp.Compare(a.index, b.index)
}

func sortScored(items []scoredSentence, order func(a, b scoredSentence) int) {
	slices.SortStableFunc(items, order)
}

// SelectTop returns the topN best scoring sentences. With reorder set the
// selection is returned in document order, otherwise in rank order.
func SelectTop(sentences []domain.Sentence, scores Vector, topN int, reorder bool) ([]domain.Sentence, error) {
	if len(sentences) != len(scores) {
		return nil, fmt.Errorf("%d sentences, %d scores: %w", len(sentences), len(scores), ErrLengthMismatch)
	}
	if topN <= 0 {
		return nil, nil
	}
	items := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		items[i] = scoredSentence{sentence: s, index: i, score: scores[i]}
	}
	sortScored(items, byScore)
	if topN < len(items) {
		items = items[:topN]
	}
	if reorder {
		sortScored(items, byPosition)
	}
	out := make([]domain.Sentence, len(items))
	for i, item := range items {
		out[i] = item.sentence
	}
	return out, nil
}
