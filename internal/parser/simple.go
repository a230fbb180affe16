// Package parser turns raw text into tagged, lemmatized sentences.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"gopkg.in/neurosnap/sentences.v1"
	englishsentences "gopkg.in/neurosnap/sentences.v1/english"

	"exsum/internal/domain"
	"exsum/internal/filter"
)

// Simple is a lightweight English parser: Punkt sentence boundaries, a regular
// expression word splitter, snowball stems standing in for lemmas and a
// capitalization heuristic for proper nouns.
type Simple struct {
	splitter *sentences.DefaultSentenceTokenizer
	words    *regexp.Regexp
}

// NewSimple loads the English sentence model.
func NewSimple() (*Simple, error) {
	tokenizer, err := englishsentences.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence model: %w", err)
	}
	return &Simple{
		splitter: tokenizer,
		words:    regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+(?:[.,]\p{N}+)*|\S`),
	}, nil
}

// Name returns the identifier of this parser implementation.
func (p *Simple) Name() string { return "simple" }

// Parse splits text into sentences. The first line is split on its own so a
// title never runs into the body. Token indices run across the whole text.
func (p *Simple) Parse(text string) ([]domain.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []domain.Sentence
	index := 0
	title, body, _ := strings.Cut(text, "\n")
	for _, segment := range []string{title, body} {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		for _, s := range p.splitter.Tokenize(segment) {
			var words []string
			for _, w := range p.words.FindAllString(s.Text, -1) {
				words = append(words, splitContraction(w)...)
			}
			if len(words) == 0 {
				continue
			}
			tokens := make([]domain.Token, len(words))
			for i, w := range words {
				tokens[i] = domain.Token{
					Text:  w,
					Lemma: lemmatize(w),
					Tag:   tag(w, i == 0),
					Index: index,
				}
				index++
			}
			out = append(out, domain.Sentence{Tokens: tokens})
		}
	}
	return out, nil
}

type clitic struct {
	lemma string
	tag   string
}

// clitics are the contraction suffixes split off a word, keyed by normalized text.
var clitics = map[string]clitic{
	"n't": {lemma: "n't", tag: "RB"},
	"'s":  {lemma: "'s", tag: "POS"},
	"'re": {lemma: "be", tag: "VBP"},
	"'m":  {lemma: "be", tag: "VBP"},
	"'ve": {lemma: "have", tag: "VBP"},
	"'ll": {lemma: "will", tag: "MD"},
	"'d":  {lemma: "would", tag: "MD"},
}

var cliticSuffixes = []string{"n't", "'s", "'re", "'m", "'ve", "'ll", "'d"}

// splitContraction separates a trailing clitic: "don't" becomes "do" and
// "n't", "Anna's" becomes "Anna" and "'s". Contractions listed whole as noise,
// such as "can't", stay one token.
func splitContraction(word string) []string {
	norm := normalize(word)
	if filter.IsNoise(norm) {
		return []string{word}
	}
	runes := []rune(word)
	for _, suffix := range cliticSuffixes {
		n := len(suffix) // clitics are ASCII
		if len(runes) > n && strings.HasSuffix(norm, suffix) && hasLetter(string(runes[:len(runes)-n])) {
			return []string{string(runes[:len(runes)-n]), string(runes[len(runes)-n:])}
		}
	}
	return []string{word}
}

// normalize lowercases word and folds the typographic apostrophe, rune for rune.
func normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if r == '’' {
			return '\''
		}
		return unicode.ToLower(r)
	}, word)
}

func lemmatize(word string) string {
	lower := normalize(word)
	if c, ok := clitics[lower]; ok {
		return c.lemma
	}
	// stop words stay unstemmed so the noise filter still recognizes them
	if filter.IsNoise(lower) || !hasLetter(lower) {
		return lower
	}
	return english.Stem(lower, false)
}

func tag(word string, sentenceStart bool) string {
	if c, ok := clitics[normalize(word)]; ok {
		return c.tag
	}
	switch word {
	case ".", "!", "?":
		return "."
	case ",":
		return ","
	case ":", ";":
		return ":"
	}
	runes := []rune(word)
	first := runes[0]
	switch {
	case unicode.IsDigit(first):
		return "CD"
	case !unicode.IsLetter(first):
		return "SYM"
	case unicode.IsUpper(first) && !sentenceStart:
		return "NNP"
	case len(runes) > 1 && strings.ToUpper(word) == word:
		return "NNP"
	default:
		return "NN"
	}
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

var _ domain.Parser = (*Simple)(nil)
