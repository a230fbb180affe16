package summarizer

import (
	"fmt"
	"math"
	"strings"

	"exsum/internal/domain"
	"exsum/internal/ranking"
)

// Feature rates every sentence of a preprocessed document.
// Score must return exactly one value per sentence and must not modify p.
type Feature interface {
	Name() string
	Score(p *Preprocessed) (Vector, error)
}

// Feature names accepted by NewFeature.
const (
	FeatureTitle      = "title"
	FeatureLength     = "length"
	FeatureTFISF      = "tfisf"
	FeaturePosition   = "position"
	FeatureProperNoun = "proper_noun"
	FeatureThematic   = "thematic"
	FeatureNumeric    = "numeric"
	FeatureSimilarity = "similarity"
)

// DefaultThematicWords is the number of top lemmas treated as thematic.
const DefaultThematicWords = 10

// DefaultFeatures lists the features enabled unless configured otherwise,
// in summation order. Similarity is quadratic in sentence count and is opt-in.
func DefaultFeatures() []string {
	return []string{
		FeatureTitle,
		FeatureLength,
		FeatureTFISF,
		FeaturePosition,
		FeatureProperNoun,
		FeatureThematic,
		FeatureNumeric,
	}
}

// NewFeature builds the scorer registered under name.
func NewFeature(name string, thematicWords int) (Feature, error) {
	switch name {
	case FeatureTitle:
		return TitleOverlap{}, nil
	case FeatureLength:
		return SentenceLength{}, nil
	case FeatureTFISF:
		return TFISF{}, nil
	case FeaturePosition:
		return SentencePosition{}, nil
	case FeatureProperNoun:
		return ProperNouns{}, nil
	case FeatureThematic:
		if thematicWords <= 0 {
			thematicWords = DefaultThematicWords
		}
		return ThematicWords{K: thematicWords}, nil
	case FeatureNumeric:
		return NumericTokens{}, nil
	case FeatureSimilarity:
		return SentenceSimilarity{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFeature)
	}
}

// TitleOverlap is the share of title tokens whose lemma also occurs in the sentence.
type TitleOverlap struct{}

func (TitleOverlap) Name() string { return FeatureTitle }

func (TitleOverlap) Score(p *Preprocessed) (Vector, error) {
	out := make(Vector, p.NumSentences())
	if len(p.Title) == 0 {
		return out, nil
	}
	lookup := make(map[string]struct{}, len(p.Title))
	for _, t := range p.Title {
		lookup[lowerLemma(t)] = struct{}{}
	}
	titleLen := float64(len(p.Title))
	for i, s := range p.Filtered {
		count := 0
		for _, t := range s.Tokens {
			if _, ok := lookup[lowerLemma(t)]; ok {
				count++
			}
		}
		out[i] = float64(count) / titleLen
	}
	return out, nil
}

// SentenceLength compares each sentence with the longest one.
type SentenceLength struct{}

func (SentenceLength) Name() string { return FeatureLength }

func (SentenceLength) Score(p *Preprocessed) (Vector, error) {
	out := make(Vector, p.NumSentences())
	if p.Longest <= 0 {
		return out, nil
	}
	longest := float64(p.Longest)
	for i, s := range p.Filtered {
		out[i] = float64(s.Len()) / longest
	}
	return out, nil
}

// TFISF sums freq(lemma) * ln(N / sentenceFrequency(lemma)) over a sentence's
// tokens and normalizes by the document maximum.
type TFISF struct{}

func (TFISF) Name() string { return FeatureTFISF }

func (TFISF) Score(p *Preprocessed) (Vector, error) {
	return tfisf(p, newSentenceFrequencies(p.Filtered))
}

func tfisf(p *Preprocessed, sf *sentenceFrequencies) (Vector, error) {
	out := make(Vector, p.NumSentences())
	n := float64(p.NumSentences())
	for i, s := range p.Filtered {
		w := 0.0
		for _, t := range s.Tokens {
			lemma := lowerLemma(t)
			freq, ok := p.Frequency[lemma]
			if !ok {
				return nil, fmt.Errorf("tf-isf sentence %d lemma %q: %w", i, lemma, ErrMissingFrequency)
			}
			containing := sf.count(lemma)
			if containing == 0 {
				return nil, fmt.Errorf("tf-isf sentence %d lemma %q has no containing sentence: %w", i, lemma, ErrMissingFrequency)
			}
			w += float64(freq) * math.Log(n/float64(containing))
		}
		out[i] = w
	}
	return Normalize(out), nil
}

// sentenceFrequencies memoizes how many sentences contain a lemma.
// It lives for one scoring pass over one document.
type sentenceFrequencies struct {
	sentences []domain.Sentence
	counts    map[string]int
}

func newSentenceFrequencies(sentences []domain.Sentence) *sentenceFrequencies {
	return &sentenceFrequencies{sentences: sentences, counts: make(map[string]int)}
}

func (c *sentenceFrequencies) count(lemma string) int {
	if n, ok := c.counts[lemma]; ok {
		return n
	}
	n := 0
	for _, s := range c.sentences {
		for _, t := range s.Tokens {
			if lowerLemma(t) == lemma {
				n++
				break
			}
		}
	}
	c.counts[lemma] = n
	return n
}

// SentencePosition decays linearly from 1 over the first quarter of the document.
type SentencePosition struct{}

func (SentencePosition) Name() string { return FeaturePosition }

func (SentencePosition) Score(p *Preprocessed) (Vector, error) {
	out := make(Vector, p.NumSentences())
	numToRank := p.NumSentences() / 4
	for rank := 0; rank < numToRank; rank++ {
		out[rank] = float64(numToRank-rank) / float64(numToRank)
	}
	return out, nil
}

// ProperNouns is the share of tokens tagged NNP or NNPS.
type ProperNouns struct{}

func (ProperNouns) Name() string { return FeatureProperNoun }

func (ProperNouns) Score(p *Preprocessed) (Vector, error) {
	out := make(Vector, p.NumSentences())
	for i, s := range p.Filtered {
		if s.Len() == 0 {
			continue
		}
		count := 0
		for _, t := range s.Tokens {
			if strings.EqualFold(t.Tag, "NNP") || strings.EqualFold(t.Tag, "NNPS") {
				count++
			}
		}
		out[i] = float64(count) / float64(s.Len())
	}
	return out, nil
}

// ThematicWords counts tokens among the K most frequent lemmas, normalized by the document maximum.
type ThematicWords struct {
	K int
}

func (ThematicWords) Name() string { return FeatureThematic }

func (f ThematicWords) Score(p *Preprocessed) (Vector, error) {
	k := f.K
	if k <= 0 {
		k = DefaultThematicWords
	}
	thematic := make(map[string]struct{}, k)
	for _, w := range ranking.TopN(p.Frequency, k) {
		thematic[w] = struct{}{}
	}
	out := make(Vector, p.NumSentences())
	for i, s := range p.Filtered {
		count := 0
		for _, t := range s.Tokens {
			if _, ok := thematic[lowerLemma(t)]; ok {
				count++
			}
		}
		out[i] = float64(count)
	}
	return Normalize(out), nil
}

// NumericTokens counts tokens whose lemma is made only of ASCII digits.
type NumericTokens struct{}

func (NumericTokens) Name() string { return FeatureNumeric }

func (NumericTokens) Score(p *Preprocessed) (Vector, error) {
	out := make(Vector, p.NumSentences())
	for i, s := range p.Filtered {
		count := 0
		for _, t := range s.Tokens {
			if isNumber(t.Lemma) {
				count++
			}
		}
		out[i] = float64(count)
	}
	return out, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
