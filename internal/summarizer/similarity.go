package summarizer

import "math"

// SentenceSimilarity sums the cosine similarity between a sentence and every
// other sentence, normalized by the document maximum. Sentences are compared
// as lemma count vectors. Cost grows with the square of the sentence count,
// so it is not part of DefaultFeatures.
type SentenceSimilarity struct{}

func (SentenceSimilarity) Name() string { return FeatureSimilarity }

func (SentenceSimilarity) Score(p *Preprocessed) (Vector, error) {
	n := p.NumSentences()
	bags := make([]map[string]int, n)
	norms := make([]float64, n)
	for i, s := range p.Filtered {
		bag := make(map[string]int, s.Len())
		for _, t := range s.Tokens {
			bag[lowerLemma(t)]++
		}
		sum := 0.0
		for _, c := range bag {
			sum += float64(c * c)
		}
		bags[i] = bag
		norms[i] = math.Sqrt(sum)
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := cosine(bags[i], bags[j], norms[i], norms[j])
			out[i] += sim
			out[j] += sim
		}
	}
	return Normalize(out), nil
}

func cosine(a, b map[string]int, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	// iterate the smaller bag
	if len(a) > len(b) {
		a, b = b, a
	}
	dot := 0
	for lemma, ca := range a {
		if cb, ok := b[lemma]; ok {
			dot += ca * cb
		}
	}
	return float64(dot) / (normA * normB)
}
