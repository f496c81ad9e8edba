package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/router"
	"github.com/pathwise/pathwise/internal/screen/screentest"
	"github.com/pathwise/pathwise/internal/screens/home"
	"github.com/pathwise/pathwise/internal/screens/welcome"
)

func sized(t *testing.T, m AppModel) AppModel {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 36})
	return next.(AppModel)
}

func TestAppModel_StartsOnWelcome(t *testing.T) {
	svc, _ := screentest.Services(t)
	m := sized(t, newAppModel(svc))

	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
	assert.Contains(t, m.render(), "no track yet")
}

func TestAppModel_HeaderShowsTrack(t *testing.T) {
	svc, _ := screentest.Services(t)
	require.NoError(t, svc.Study.AdoptTrack(context.Background(), domain.Data))

	m := sized(t, newAppModel(svc))
	next, _ := m.Update(m.loadTrack()())
	m = next.(AppModel)

	assert.Equal(t, "Data Science", m.track)
	assert.Contains(t, m.render(), "◆ Data Science")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	svc, _ := screentest.Services(t)
	m := newAppModel(svc)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	svc, _ := screentest.Services(t)
	m := newAppModel(svc)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	next, _ := m.Update(router.PushScreenMsg{Screen: home.New(svc)})
	m = next.(AppModel)
	require.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestAppModel_TooSmall(t *testing.T) {
	svc, _ := screentest.Services(t)
	next, _ := newAppModel(svc).Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Contains(t, next.(AppModel).render(), "Terminal too small!")
}

func TestAppModel_FooterUsesScreenHints(t *testing.T) {
	svc, _ := screentest.Services(t)
	m := newAppModel(svc)

	hints := m.footerHints(home.New(svc))
	assert.Equal(t, "Navigate", hints[0].Description)

	m.router.Push(home.New(svc))
	hints = m.footerHints(m.router.Active())
	assert.Equal(t, "Back", hints[0].Description)
}
