package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exsum/internal/domain"
)

func TestPreprocess(t *testing.T) {
	p := Preprocess(catDocument())
	require.NotNil(t, p)

	require.Len(t, p.Original, 3)
	require.Len(t, p.Filtered, 3)
	assert.Equal(t, []string{"Cat", "cat sat", "cat sat mat"}, texts(p.Filtered))
	assert.Equal(t, map[string]int{"cat": 3, "sit": 2, "mat": 1}, p.Frequency)
	assert.Equal(t, 3, p.Longest)
	require.Len(t, p.Title, 1)
	assert.Equal(t, "Cat", p.Title[0].Text)
}

func TestPreprocessKeepsEmptySentences(t *testing.T) {
	p := Preprocess(document(
		[]string{"Storms|storm|NNS"},
		[]string{"It|it|PRP", "is|be|VBZ", ".|.|."},
		[]string{"Rain|rain|NN", "fell|fall|VBD"},
	))
	require.NotNil(t, p)
	require.Len(t, p.Filtered, 3)
	assert.Empty(t, p.Filtered[1].Tokens)
	assert.Equal(t, "It is .", p.Original[1].String())
	assert.Equal(t, 2, p.Longest)
}

func TestPreprocessLowercasesLemmas(t *testing.T) {
	p := Preprocess(document(
		[]string{"Paris|Paris|NNP"},
		[]string{"paris|paris|NN", "THE|THE|DT"},
	))
	require.NotNil(t, p)
	assert.Equal(t, map[string]int{"paris": 2}, p.Frequency)
}

func TestPreprocessEmptyDocument(t *testing.T) {
	assert.Nil(t, Preprocess(nil))
	assert.Nil(t, Preprocess([]domain.Sentence{}))
}

func TestPreprocessAllNoise(t *testing.T) {
	p := Preprocess(document([]string{"The|the|DT", ".|.|."}))
	require.NotNil(t, p)
	assert.Empty(t, p.Title)
	assert.Empty(t, p.Frequency)
	assert.Zero(t, p.Longest)
}
