package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTokenOrder reports a document whose token indices do not increase monotonically.
var ErrTokenOrder = errors.New("token indices must increase across the document")

// Token is a single word or symbol emitted by a Parser.
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	Tag   string `json:"tag"`
	// Index is the token's position in document order; it is never reset per sentence.
	Index int `json:"index"`
}

// Sentence is an ordered sequence of tokens, left to right as in the source text.
type Sentence struct {
	Tokens []Token `json:"tokens"`
}

// String joins the token text with single spaces.
func (s Sentence) String() string {
	var b strings.Builder
	for _, t := range s.Tokens {
		b.WriteString(t.Text)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// Len returns the number of tokens in the sentence.
func (s Sentence) Len() int { return len(s.Tokens) }

// Parser turns raw text into sentences of tagged, lemmatized tokens.
type Parser interface {
	Name() string
	Parse(text string) ([]Sentence, error)
}

// Summarizer selects the most representative sentences of a parsed document.
type Summarizer interface {
	Summarize(document []Sentence, topN int, reorder bool) ([]Sentence, error)
}

// ValidateDocument checks that token indices strictly increase across all sentences.
func ValidateDocument(document []Sentence) error {
	last := -1
	first := true
	for si, s := range document {
		for ti, t := range s.Tokens {
			if !first && t.Index <= last {
				return fmt.Errorf("sentence %d token %d (index %d after %d): %w", si, ti, t.Index, last, ErrTokenOrder)
			}
			last = t.Index
			first = false
		}
	}
	return nil
}
