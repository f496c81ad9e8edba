package quiz

import (
	"fmt"
	"slices"
)

// DefaultQuestionCount is the number of questions in one quiz run.
const DefaultQuestionCount = 5

// Sample draws k distinct questions from bank in random order.
// It fails with ErrInvalidArgument when k is not in [1, len(bank)].
// The bank slice is left untouched.
func Sample(bank []Question, k int, rng Rand) ([]Question, error) {
	if k <= 0 || k > len(bank) {
		return nil, fmt.Errorf("%w: requested %d questions from a bank of %d", ErrInvalidArgument, k, len(bank))
	}

	// Partial Fisher-Yates over a copy: only the first k slots are settled.
	pool := slices.Clone(bank)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k], nil
}
