package quiz

import (
	"sort"

	"github.com/pathwise/pathwise/internal/domain"
)

// Tally accumulates per-domain points. Absent keys count as zero.
type Tally map[domain.Key]int

// NewTally returns an empty tally.
func NewTally() Tally {
	return make(Tally)
}

// Accumulate adds one point to every domain the option contributes to.
// Calling it twice for the same answer counts the answer twice.
func (t Tally) Accumulate(opt Option) {
	for _, d := range opt.Domains {
		t[d]++
	}
}

// Score returns the points for k.
func (t Tally) Score(k domain.Key) int {
	return t[k]
}

// Clone returns a copy with an explicit entry for every domain.
func (t Tally) Clone() Tally {
	out := make(Tally, len(domain.All()))
	for _, k := range domain.All() {
		out[k] = t[k]
	}
	return out
}

// NoClearPreference is reported as the primary match when nothing scored.
var NoClearPreference = domain.Info{
	Name:        "No clear preference",
	Description: "You didn't show strong preference for any domain",
	Icon:        "❓",
	Color:       "#6C5CE7",
}

// Match is a resolved domain with its score.
type Match struct {
	Info  domain.Info
	Score int
}

// ScoreResult is the outcome of a completed quiz.
type ScoreResult struct {
	Primary   Match
	Secondary *Match
	Scores    Tally
}

// HasPreference is false when the primary is the NoClearPreference sentinel.
func (r ScoreResult) HasPreference() bool {
	return r.Primary.Info.Key != ""
}

// Resolve picks the primary and secondary domain from a tally.
//
// Ties at the top are broken with rng. The secondary is the best domain
// below the top tier; when the whole scored set is one tie, it is the
// tied domain following the primary (wrapping around).
func Resolve(t Tally, rng Rand) ScoreResult {
	scores := t.Clone()

	var scored []domain.Key
	for _, k := range domain.All() {
		if scores[k] > 0 {
			scored = append(scored, k)
		}
	}
	// Stable sort keeps declaration order inside equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scores[scored[i]] > scores[scored[j]]
	})

	if len(scored) == 0 {
		return ScoreResult{
			Primary: Match{Info: NoClearPreference},
			Scores:  scores,
		}
	}

	maxScore := scores[scored[0]]
	top := 0
	for top < len(scored) && scores[scored[top]] == maxScore {
		top++
	}
	topDomains := scored[:top]

	primaryIndex := rng.IntN(len(topDomains))
	primary := topDomains[primaryIndex]

	var secondary *Match
	switch {
	case len(scored) > len(topDomains):
		k := scored[len(topDomains)]
		secondary = &Match{Info: domain.MustLookup(k), Score: scores[k]}
	case len(topDomains) > 1:
		k := topDomains[(primaryIndex+1)%len(topDomains)]
		secondary = &Match{Info: domain.MustLookup(k), Score: scores[k]}
	}

	return ScoreResult{
		Primary:   Match{Info: domain.MustLookup(primary), Score: maxScore},
		Secondary: secondary,
		Scores:    scores,
	}
}
