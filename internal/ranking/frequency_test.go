package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopN(t *testing.T) {
	freq := map[string]int{
		"cat":   3,
		"sit":   2,
		"mat":   1,
		"Bird":  2,
		"apple": 2,
	}
	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "frequency then alphabetical", n: 4, want: []string{"cat", "apple", "Bird", "sit"}},
		{name: "truncated", n: 1, want: []string{"cat"}},
		{name: "larger than table", n: 50, want: []string{"cat", "apple", "Bird", "sit", "mat"}},
		{name: "zero", n: 0, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopN(freq, tt.n))
		})
	}
}

func TestTopNEmptyTable(t *testing.T) {
	assert.Empty(t, TopN(map[string]int{}, 3))
	assert.Empty(t, TopN(nil, 3))
}

func TestRankIsFrequencyDescending(t *testing.T) {
	freq := map[string]int{"d": 1, "c": 4, "b": 4, "a": 2, "e": 9}
	ranked := Rank(freq, 10)
	require.Len(t, ranked, len(freq))
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		require.GreaterOrEqual(t, prev.Frequency, cur.Frequency)
		if prev.Frequency == cur.Frequency {
			assert.Less(t, prev.Word, cur.Word)
		}
	}
	assert.Equal(t, WordFrequency{Word: "e", Frequency: 9}, ranked[0])
}
