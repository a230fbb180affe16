package summarizer

import (
	"strings"

	"exsum/internal/domain"
	"exsum/internal/filter"
)

// Preprocessed holds the per-document statistics shared by every feature.
// Original and Filtered are index-aligned: a sentence emptied by filtering
// stays in Filtered as an empty placeholder.
type Preprocessed struct {
	Original  []domain.Sentence
	Filtered  []domain.Sentence
	Frequency map[string]int // lowercased lemma -> occurrences
	Longest   int            // token count of the longest filtered sentence
	Title     []domain.Token // filtered tokens of sentence 0
}

// Preprocess strips noise tokens and builds the lemma frequency table.
// It returns nil for a document without sentences.
func Preprocess(raw []domain.Sentence) *Preprocessed {
	if len(raw) == 0 {
		return nil
	}
	p := &Preprocessed{
		Original:  raw,
		Filtered:  make([]domain.Sentence, len(raw)),
		Frequency: make(map[string]int),
	}
	for i, sentence := range raw {
		tokens := make([]domain.Token, 0, len(sentence.Tokens))
		for _, t := range sentence.Tokens {
			lemma := lowerLemma(t)
			if filter.IsNoise(lemma) {
				continue
			}
			tokens = append(tokens, t)
			p.Frequency[lemma]++
		}
		p.Filtered[i] = domain.Sentence{Tokens: tokens}
		if len(tokens) > p.Longest {
			p.Longest = len(tokens)
		}
	}
	p.Title = p.Filtered[0].Tokens
	return p
}

// NumSentences is the number of sentences, including emptied ones.
func (p *Preprocessed) NumSentences() int { return len(p.Filtered) }

func lowerLemma(t domain.Token) string { return strings.ToLower(t.Lemma) }
