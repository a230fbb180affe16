package summarizer

import (
	"strings"

	"exsum/internal/domain"
)

// document builds sentences from "text|lemma|tag" specs. A bare word gets its
// lowercased text as lemma and NN as tag. Indices run across the document.
func document(sentences ...[]string) []domain.Sentence {
	out := make([]domain.Sentence, 0, len(sentences))
	index := 0
	for _, specs := range sentences {
		tokens := make([]domain.Token, 0, len(specs))
		for _, spec := range specs {
			parts := strings.Split(spec, "|")
			t := domain.Token{Text: parts[0], Lemma: strings.ToLower(parts[0]), Tag: "NN", Index: index}
			if len(parts) > 1 {
				t.Lemma = parts[1]
			}
			if len(parts) > 2 {
				t.Tag = parts[2]
			}
			tokens = append(tokens, t)
			index++
		}
		out = append(out, domain.Sentence{Tokens: tokens})
	}
	return out
}

// catDocument is "The Cat." / "A cat sat." / "A cat sat on a mat."
func catDocument() []domain.Sentence {
	return document(
		[]string{"The|the|DT", "Cat|cat|NNP", ".|.|."},
		[]string{"A|a|DT", "cat|cat|NN", "sat|sit|VBD", ".|.|."},
		[]string{"A|a|DT", "cat|cat|NN", "sat|sit|VBD", "on|on|IN", "a|a|DT", "mat|mat|NN", ".|.|."},
	)
}

func texts(sentences []domain.Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.String()
	}
	return out
}
