package interview

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/pathwise/internal/domain"
	iv "github.com/pathwise/pathwise/internal/interview"
	"github.com/pathwise/pathwise/internal/llm"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/screen/screentest"
)

const graded = `{"score":82,"feedback":"Solid answer.","strengths":["Clear"],"improvements":["Add an example"]}`

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}

func withTrack(t *testing.T, mock *llm.MockProvider) *screen.Services {
	t.Helper()
	svc, _ := screentest.Services(t)
	require.NoError(t, svc.Study.AdoptTrack(context.Background(), domain.AIML))
	if mock != nil {
		svc.Evaluator = iv.NewEvaluator(mock, iv.DefaultConfig())
	}
	return svc
}

func started(t *testing.T, svc *screen.Services) *InterviewScreen {
	t.Helper()
	s := New(svc)
	s.Update(s.Init()())
	return s
}

func TestInterviewScreen_GradesAndRecords(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(graded)})
	svc := withTrack(t, mock)
	s := started(t, svc)
	require.Equal(t, phaseAnswering, s.phase)
	assert.Contains(t, iv.Questions(domain.AIML), s.question)

	for _, r := range "Overfitting means" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(ctrlS)
	require.NotNil(t, cmd)
	assert.Equal(t, phaseGrading, s.phase)

	s.Update(cmd())
	require.Equal(t, phaseGraded, s.phase)
	assert.Equal(t, 82, s.result.Score)
	assert.Contains(t, s.View(100, 40), "Solid answer.")

	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Overfitting means")

	p, err := svc.Study.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, p.Interviews, 1)
	assert.Equal(t, domain.AIML, p.Interviews[0].Domain)
	assert.Equal(t, screentest.Now, p.Interviews[0].Date)

	s.Update(keyPress('n'))
	assert.Equal(t, phaseAnswering, s.phase)
	assert.Empty(t, s.answer.Value())
}

func TestInterviewScreen_EmptyAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	s := started(t, withTrack(t, mock))

	_, cmd := s.Update(ctrlS)
	assert.Nil(t, cmd)
	assert.Contains(t, s.errMsg, "Write an answer")
	assert.Zero(t, mock.CallCount())
}

func TestInterviewScreen_ProviderErrorKeepsAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	s := started(t, withTrack(t, mock))

	s.Update(keyPress('x'))
	_, cmd := s.Update(ctrlS)
	s.Update(cmd())

	assert.Equal(t, phaseAnswering, s.phase)
	assert.NotEmpty(t, s.errMsg)
	assert.Equal(t, "x", s.answer.Value())
}

func TestInterviewScreen_NoEvaluator(t *testing.T) {
	s := started(t, withTrack(t, nil))
	assert.Equal(t, phaseLoading, s.phase)
	assert.Contains(t, s.View(100, 30), "need an LLM provider")
}

func TestInterviewScreen_NoTrack(t *testing.T) {
	svc, _ := screentest.Services(t)
	svc.Evaluator = iv.NewEvaluator(llm.NewMockProvider(), iv.DefaultConfig())
	s := started(t, svc)
	assert.Contains(t, s.View(100, 30), "Take the career quiz first")
}
