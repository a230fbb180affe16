package summarizer

import "fmt"

// Vector holds one value per sentence, index-aligned with Preprocessed.Filtered.
type Vector []float64

// Max returns the largest value, or 0 for an empty vector.
func (v Vector) Max() float64 {
	largest := 0.0
	for _, x := range v {
		if x > largest {
			largest = x
		}
	}
	return largest
}

// Normalize divides every value by the vector's maximum.
// When the maximum is not positive the values are returned unchanged.
func Normalize(v Vector) Vector {
	largest := v.Max()
	out := make(Vector, len(v))
	copy(out, v)
	if largest <= 0 {
		return out
	}
	for i := range out {
		out[i] /= largest
	}
	return out
}

// Aggregate sums vectors element-wise in the order given.
func Aggregate(vectors ...Vector) (Vector, error) {
	if len(vectors) == 0 {
		return Vector{}, nil
	}
	n := len(vectors[0])
	total := make(Vector, n)
	for k, v := range vectors {
		if len(v) != n {
			return nil, fmt.Errorf("vector %d has %d values, want %d: %w", k, len(v), n, ErrLengthMismatch)
		}
		for i, x := range v {
			total[i] += x
		}
	}
	return total, nil
}
