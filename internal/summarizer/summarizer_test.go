package summarizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exsum/internal/domain"
)

func newDefault(t *testing.T, parallel bool) *Summarizer {
	t.Helper()
	s, err := New(Options{Parallel: parallel}, nil)
	require.NoError(t, err)
	return s
}

func TestSummarizeCatDocument(t *testing.T) {
	s := newDefault(t, true)

	got, err := s.Summarize(catDocument(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A cat sat on a mat ."}, texts(got))

	got, err = s.Summarize(catDocument(), 2, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A cat sat on a mat .", "A cat sat ."}, texts(got))

	got, err = s.Summarize(catDocument(), 2, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A cat sat .", "A cat sat on a mat ."}, texts(got))
}

func TestScoreBreakdown(t *testing.T) {
	s := newDefault(t, false)
	scores, err := s.Score(catDocument())
	require.NoError(t, err)
	require.NotNil(t, scores)

	assert.Equal(t, DefaultFeatures(), scores.Features)
	require.Len(t, scores.Vectors, len(DefaultFeatures()))
	require.Len(t, scores.Total, 3)
	for i := range scores.Total {
		sum := 0.0
		for _, v := range scores.Vectors {
			sum += v[i]
		}
		assert.InDelta(t, sum, scores.Total[i], delta)
	}
	// the title wins on proper nouns but the longest sentence wins overall
	assert.Greater(t, scores.Total[2], scores.Total[1])
	assert.Greater(t, scores.Total[1], scores.Total[0])
}

func TestSummarizeNonPositiveTopN(t *testing.T) {
	s := newDefault(t, true)
	for _, n := range []int{0, -1} {
		got, err := s.Summarize(catDocument(), n, true)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestSummarizeEmptyDocument(t *testing.T) {
	s := newDefault(t, true)
	got, err := s.Summarize(nil, 3, true)
	require.NoError(t, err)
	assert.Empty(t, got)

	scores, err := s.Score([]domain.Sentence{})
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestSummarizeOnlyNoise(t *testing.T) {
	doc := document(
		[]string{"The|the|DT", ".|.|."},
		[]string{"It|it|PRP", "is|be|VBZ", ".|.|."},
		[]string{"Of|of|IN", "them|them|PRP", "!|!|."},
	)
	s := newDefault(t, true)

	scores, err := s.Score(doc)
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0, 0}, scores.Total)

	got, err := s.Summarize(doc, 2, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"The .", "It is ."}, texts(got))
}

func TestSummarizeProperties(t *testing.T) {
	doc := document(
		[]string{"Hurricane|hurricane|NN", "Ida|Ida|NNP", "report|report|NN"},
		[]string{"Hurricane|hurricane|NN", "Ida|Ida|NNP", "made|make|VBD", "landfall|landfall|NN", "in|in|IN", "Louisiana|Louisiana|NNP"},
		[]string{"Winds|wind|NNS", "reached|reach|VBD", "150|150|CD", "mph|mph|NN"},
		[]string{"Over|over|IN", "1|1|CD", "million|million|CD", "homes|home|NNS", "lost|lose|VBD", "power|power|NN"},
		[]string{"Crews|crew|NNS", "restored|restore|VBD", "power|power|NN", "slowly|slowly|RB"},
		[]string{"The|the|DT", "storm|storm|NN", "weakened|weaken|VBD", "inland|inland|RB"},
		[]string{"Flooding|flooding|NN", "hit|hit|VBD", "New|New|NNP", "York|York|NNP"},
		[]string{"Officials|official|NNS", "praised|praise|VBD", "the|the|DT", "crews|crew|NNS"},
	)
	s := newDefault(t, true)
	scores, err := s.Score(doc)
	require.NoError(t, err)

	for topN := 0; topN <= len(doc)+2; topN++ {
		ranked, err := s.Summarize(doc, topN, false)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(ranked), topN)
		assert.LessOrEqual(t, len(ranked), len(doc))

		positions := indexesOf(t, doc, ranked)
		for i := 1; i < len(positions); i++ {
			prev, cur := scores.Total[positions[i-1]], scores.Total[positions[i]]
			assert.True(t, prev > cur || (prev == cur && positions[i-1] < positions[i]),
				"rank order violated at %d", i)
		}

		ordered, err := s.Summarize(doc, topN, true)
		require.NoError(t, err)
		positions = indexesOf(t, doc, ordered)
		for i := 1; i < len(positions); i++ {
			assert.Less(t, positions[i-1], positions[i])
		}
	}
}

// indexesOf maps selected sentences back to document positions via their first token index.
func indexesOf(t *testing.T, doc, selected []domain.Sentence) []int {
	t.Helper()
	byFirst := make(map[int]int, len(doc))
	for i, s := range doc {
		byFirst[s.Tokens[0].Index] = i
	}
	out := make([]int, len(selected))
	for i, s := range selected {
		pos, ok := byFirst[s.Tokens[0].Index]
		require.True(t, ok)
		out[i] = pos
	}
	return out
}

func TestSummarizeIsDeterministic(t *testing.T) {
	sequential := newDefault(t, false)
	parallel := newDefault(t, true)

	want, err := sequential.Score(catDocument())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		got, err := parallel.Score(catDocument())
		require.NoError(t, err)
		assert.Equal(t, want.Total, got.Total)
	}

	first, err := parallel.Summarize(catDocument(), 2, false)
	require.NoError(t, err)
	second, err := parallel.Summarize(catDocument(), 2, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSummarizeRejectsUnorderedTokens(t *testing.T) {
	doc := catDocument()
	doc[2].Tokens[0].Index = 0

	_, err := newDefault(t, true).Summarize(doc, 1, false)
	require.ErrorIs(t, err, domain.ErrTokenOrder)
}

func TestNewUnknownFeature(t *testing.T) {
	_, err := New(Options{Features: []string{FeatureTitle, "sentiment"}}, nil)
	require.ErrorIs(t, err, ErrUnknownFeature)
}

func TestSimilarityIsPluggable(t *testing.T) {
	s, err := New(Options{Features: append(DefaultFeatures(), FeatureSimilarity)}, nil)
	require.NoError(t, err)
	assert.Equal(t, append(DefaultFeatures(), FeatureSimilarity), s.FeatureNames())

	scores, err := s.Score(catDocument())
	require.NoError(t, err)
	require.Len(t, scores.Vectors, 8)
	assert.Equal(t, 1.0, scores.Vectors[7].Max())
}

type brokenFeature struct{ values Vector }

func (brokenFeature) Name() string { return "broken" }

func (f brokenFeature) Score(*Preprocessed) (Vector, error) {
	if f.values == nil {
		return nil, errors.New("boom")
	}
	return f.values, nil
}

func TestFeatureFailures(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		s := NewWithFeatures([]Feature{TitleOverlap{}, brokenFeature{}}, parallel, nil)
		_, err := s.Summarize(catDocument(), 1, false)
		require.EqualError(t, err, "feature broken: boom")

		s = NewWithFeatures([]Feature{brokenFeature{values: Vector{1}}}, parallel, nil)
		_, err = s.Summarize(catDocument(), 1, false)
		require.ErrorIs(t, err, ErrLengthMismatch)
	}
}

func TestNoFeaturesScoresZero(t *testing.T) {
	s := NewWithFeatures(nil, false, nil)
	scores, err := s.Score(catDocument())
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0, 0}, scores.Total)
}
