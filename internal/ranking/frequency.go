// Package ranking orders words by how often they occur.
package ranking

import (
	"slices"
	"strings"
)

// WordFrequency pairs a word with its occurrence count.
type WordFrequency struct {
	Word      string
	Frequency int
}

// Rank returns at most n entries of freq, highest frequency first.
// Equal frequencies are ordered by word, ascending and case-insensitive.
func Rank(freq map[string]int, n int) []WordFrequency {
	if n <= 0 || len(freq) == 0 {
		return nil
	}
	words := make([]WordFrequency, 0, len(freq))
	for w, f := range freq {
		words = append(words, WordFrequency{Word: w, Frequency: f})
	}
	slices.SortFunc(words, compareWordFrequency)
	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}

// TopN returns the n most frequent keys of freq.
func TopN(freq map[string]int, n int) []string {
	ranked := Rank(freq, n)
	out := make([]string, len(ranked))
	for i, wf := range ranked {
		out[i] = wf.Word
	}
	return out
}

func compareWordFrequency(a, b WordFrequency) int {
	if a.Frequency != b.Frequency {
		if a.Frequency > b.Frequency {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word)); c != 0 {
		return c
	}
	// keys differing only in case still need a total order
	return strings.Compare(a.Word, b.Word)
}
