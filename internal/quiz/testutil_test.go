package quiz

import (
	"fmt"

	"github.com/pathwise/pathwise/internal/domain"
)

// seqRand returns the queued values in order, each reduced modulo n.
// Once exhausted it keeps returning 0.
type seqRand struct {
	vals []int
	n    []int
}

func (r *seqRand) IntN(n int) int {
	r.n = append(r.n, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func opt(text string, domains ...domain.Key) Option {
	return Option{Text: text, Domains: domains}
}

func makeBank(n int) []Question {
	bank := make([]Question, n)
	for i := range bank {
		bank[i] = Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Question: fmt.Sprintf("Question %d?", i+1),
			Options: []Option{
				opt("a", domain.FullStack),
				opt("b", domain.Data),
			},
		}
	}
	return bank
}
