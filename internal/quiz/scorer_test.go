package quiz

import (
	"testing"

	"github.com/pathwise/pathwise/internal/domain"
)

func TestTally_Accumulate(t *testing.T) {
	tally := NewTally()
	tally.Accumulate(opt("both", domain.FullStack, domain.Data))

	if tally.Score(domain.FullStack) != 1 || tally.Score(domain.Data) != 1 {
		t.Errorf("tally = %v, want fullstack:1 data:1", tally)
	}
	if tally.Score(domain.UIUX) != 0 {
		t.Errorf("uiux = %d, want 0", tally.Score(domain.UIUX))
	}

	// Accumulating again double-counts.
	tally.Accumulate(opt("both", domain.FullStack, domain.Data))
	if tally.Score(domain.FullStack) != 2 {
		t.Errorf("fullstack = %d after second accumulate, want 2", tally.Score(domain.FullStack))
	}
}

func TestTally_DisjointOptionsDoNotCrossContaminate(t *testing.T) {
	tally := NewTally()
	options := []Option{
		opt("a", domain.FullStack),
		opt("b", domain.AIML),
		opt("c", domain.UIUX, domain.Cyber),
		opt("none"),
	}
	for _, o := range options {
		tally.Accumulate(o)
	}

	want := map[domain.Key]int{
		domain.FullStack: 1,
		domain.AIML:      1,
		domain.UIUX:      1,
		domain.Data:      0,
		domain.Cyber:     1,
	}
	for k, w := range want {
		if got := tally.Score(k); got != w {
			t.Errorf("tally[%s] = %d, want %d", k, got, w)
		}
	}
}

func TestResolve_AllZero(t *testing.T) {
	res := Resolve(Tally{}, &seqRand{})

	if res.HasPreference() {
		t.Error("expected no clear preference")
	}
	if res.Primary.Info.Name != NoClearPreference.Name {
		t.Errorf("primary = %q, want sentinel", res.Primary.Info.Name)
	}
	if res.Secondary != nil {
		t.Errorf("secondary = %+v, want nil", res.Secondary)
	}
	if len(res.Scores) != len(domain.All()) {
		t.Errorf("scores has %d entries, want one per domain", len(res.Scores))
	}
	for k, v := range res.Scores {
		if v != 0 {
			t.Errorf("scores[%s] = %d, want 0", k, v)
		}
	}
}

func TestResolve_SingleDomain(t *testing.T) {
	res := Resolve(Tally{domain.Cyber: 3}, &seqRand{})

	if res.Primary.Info.Key != domain.Cyber {
		t.Errorf("primary = %q, want cyber", res.Primary.Info.Key)
	}
	if res.Primary.Score != 3 {
		t.Errorf("primary score = %d, want 3", res.Primary.Score)
	}
	if res.Secondary != nil {
		t.Errorf("secondary = %q, want nil", res.Secondary.Info.Key)
	}
}

func TestResolve_Secondary(t *testing.T) {
	tests := []struct {
		name          string
		tally         Tally
		rng           []int
		wantPrimary   domain.Key
		wantSecondary domain.Key
	}{
		{
			name:          "clear winner",
			tally:         Tally{domain.FullStack: 3, domain.UIUX: 2, domain.Data: 1},
			wantPrimary:   domain.FullStack,
			wantSecondary: domain.UIUX,
		},
		{
			name:          "second tier tie uses declaration order",
			tally:         Tally{domain.Cyber: 3, domain.Data: 1, domain.AIML: 1},
			wantPrimary:   domain.Cyber,
			wantSecondary: domain.AIML,
		},
		{
			name:          "top tie with lower tier picks lower tier",
			tally:         Tally{domain.FullStack: 2, domain.AIML: 2, domain.Data: 2, domain.Cyber: 1},
			rng:           []int{2},
			wantPrimary:   domain.Data,
			wantSecondary: domain.Cyber,
		},
		{
			name:          "two-way tie, first picked",
			tally:         Tally{domain.UIUX: 2, domain.Cyber: 2},
			rng:           []int{0},
			wantPrimary:   domain.UIUX,
			wantSecondary: domain.Cyber,
		},
		{
			name:          "two-way tie, second picked wraps",
			tally:         Tally{domain.UIUX: 2, domain.Cyber: 2},
			rng:           []int{1},
			wantPrimary:   domain.Cyber,
			wantSecondary: domain.UIUX,
		},
		{
			name:          "three-way tie, middle picked",
			tally:         Tally{domain.FullStack: 1, domain.AIML: 1, domain.Data: 1},
			rng:           []int{1},
			wantPrimary:   domain.AIML,
			wantSecondary: domain.Data,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.tally, &seqRand{vals: tt.rng})
			if res.Primary.Info.Key != tt.wantPrimary {
				t.Errorf("primary = %q, want %q", res.Primary.Info.Key, tt.wantPrimary)
			}
			if res.Secondary == nil {
				t.Fatalf("secondary = nil, want %q", tt.wantSecondary)
			}
			if res.Secondary.Info.Key != tt.wantSecondary {
				t.Errorf("secondary = %q, want %q", res.Secondary.Info.Key, tt.wantSecondary)
			}
		})
	}
}

func TestResolve_TieNeverPairsPrimaryWithItself(t *testing.T) {
	tally := Tally{domain.FullStack: 4, domain.AIML: 4, domain.UIUX: 4, domain.Data: 4, domain.Cyber: 4}
	for seed := uint64(0); seed < 200; seed++ {
		res := Resolve(tally, NewSeededRand(seed))
		if res.Secondary == nil {
			t.Fatalf("seed %d: secondary missing", seed)
		}
		if res.Secondary.Info.Key == res.Primary.Info.Key {
			t.Fatalf("seed %d: secondary equals primary %q", seed, res.Primary.Info.Key)
		}
	}
}

func TestResolve_TieBreakOnlyDrawsFromTopTier(t *testing.T) {
	rng := &seqRand{vals: []int{0}}
	Resolve(Tally{domain.AIML: 5, domain.Data: 5, domain.Cyber: 1}, rng)
	if len(rng.n) != 1 || rng.n[0] != 2 {
		t.Errorf("IntN bounds = %v, want [2]", rng.n)
	}
}

func TestResolve_IgnoresUnknownKeys(t *testing.T) {
	res := Resolve(Tally{"devops": 9, domain.Data: 1}, &seqRand{})
	if res.Primary.Info.Key != domain.Data {
		t.Errorf("primary = %q, want data", res.Primary.Info.Key)
	}
	if _, ok := res.Scores["devops"]; ok {
		t.Error("unknown key leaked into scores")
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	tally := Tally{domain.Data: 2}
	res := Resolve(tally, &seqRand{})
	res.Scores[domain.Data] = 99
	if tally[domain.Data] != 2 {
		t.Error("Resolve returned the caller's map")
	}
}

func TestResolve_ExampleScenario(t *testing.T) {
	bank := []Question{
		{ID: "Q1", Question: "one", Options: []Option{opt("a", domain.FullStack)}},
		{ID: "Q2", Question: "two", Options: []Option{opt("b", domain.FullStack, domain.Data)}},
		{ID: "Q3", Question: "three", Options: []Option{opt("c", domain.UIUX)}},
	}

	tally := NewTally()
	tally.Accumulate(bank[0].Options[0])
	tally.Accumulate(bank[1].Options[0])

	res := Resolve(tally, &seqRand{})
	if res.Scores[domain.FullStack] != 2 || res.Scores[domain.Data] != 1 {
		t.Fatalf("scores = %v", res.Scores)
	}
	if res.Primary.Info.Key != domain.FullStack {
		t.Errorf("primary = %q, want fullstack", res.Primary.Info.Key)
	}
	if res.Secondary == nil || res.Secondary.Info.Key != domain.Data {
		t.Errorf("secondary = %v, want data", res.Secondary)
	}
	if res.Primary.Info.Name != "Full Stack Development" {
		t.Errorf("primary name = %q", res.Primary.Info.Name)
	}
}
