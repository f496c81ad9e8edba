package quiz

import "fmt"

// Session tracks one pass through a sampled set of questions.
type Session struct {
	Questions []Question
	Chosen    []int
	tally     Tally
	rng       Rand
}

// NewSession samples count questions from bank and starts a run.
func NewSession(bank []Question, count int, rng Rand) (*Session, error) {
	questions, err := Sample(bank, count, rng)
	if err != nil {
		return nil, err
	}
	return &Session{
		Questions: questions,
		tally:     NewTally(),
		rng:       rng,
	}, nil
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.Questions[len(s.Chosen)], true
}

// Index is the zero-based position of the current question.
func (s *Session) Index() int {
	return len(s.Chosen)
}

// Total is the number of questions in the run.
func (s *Session) Total() int {
	return len(s.Questions)
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return len(s.Chosen) >= len(s.Questions)
}

// Answer records the chosen option for the current question.
func (s *Session) Answer(optionIndex int) error {
	q, ok := s.Current()
	if !ok {
		return ErrSessionDone
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: option %d of question %q", ErrInvalidArgument, optionIndex, q.ID)
	}
	s.tally.Accumulate(q.Options[optionIndex])
	s.Chosen = append(s.Chosen, optionIndex)
	return nil
}

// Tally returns a copy of the running tally.
func (s *Session) Tally() Tally {
	return s.tally.Clone()
}

// Result resolves the finished session.
func (s *Session) Result() (ScoreResult, error) {
	if !s.Done() {
		return ScoreResult{}, fmt.Errorf("%w: %d of %d answered", ErrSessionIncomplete, len(s.Chosen), len(s.Questions))
	}
	return Resolve(s.tally, s.rng), nil
}
