package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/pathwise/internal/router"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/screen/screentest"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestQuizScreen_FullRun(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := New(svc)
	require.NotNil(t, s.session)
	assert.Contains(t, s.View(100, 40), "Question 1 of 5")

	var cmd tea.Cmd
	for i := 0; i < svc.QuestionCount; i++ {
		require.Nil(t, cmd, "quiz finished early at question %d", i+1)
		_, cmd = s.Update(keyPress('1'))
	}
	require.NotNil(t, cmd)
	assert.True(t, s.saving)

	saved, ok := cmd().(resultSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	_, cmd = s.Update(saved)
	require.NotNil(t, cmd)
	_, ok = cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)

	p, err := svc.Study.Load(context.Background())
	require.NoError(t, err)
	if saved.Result.HasPreference() {
		assert.Equal(t, saved.Result.Primary.Info.Key, p.Domain)
	} else {
		assert.Empty(t, p.Domain)
	}
}

func TestQuizScreen_ArrowsThenEnter(t *testing.T) {
	svc, _ := screentest.Services(t)
	s := New(svc)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Len(t, s.session.Chosen, 1)
	assert.Equal(t, 1, s.session.Chosen[0])
	assert.Contains(t, s.View(100, 40), "Question 2 of 5")
}

func TestQuizScreen_BankTooSmall(t *testing.T) {
	svc, _ := screentest.Services(t)
	svc.QuestionCount = len(svc.Bank.Questions) + 1

	var s screen.Screen = New(svc)
	assert.Contains(t, s.View(100, 40), "Cannot start the quiz")
	_, cmd := s.Update(keyPress('1'))
	assert.Nil(t, cmd)
}
