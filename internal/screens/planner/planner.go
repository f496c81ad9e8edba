package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/notify"
	plan "github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

type plannerLoadedMsg struct {
	Profile *profile.Profile
	Err     error
}

type scheduleSavedMsg struct {
	Triggers []plan.NotificationTrigger
	Cleared  bool
	Err      error
}

// Focus rows after the seven weekdays.
const (
	rowTime = 7 + iota
	rowReminders
	rowSave
	rowClear
	rowCount
)

// defaultTime is offered when no schedule exists yet.
var defaultTime = plan.TimeOfDay{Hour: 9}

// PlannerScreen edits the weekly study schedule.
type PlannerScreen struct {
	svc       *screen.Services
	days      map[time.Weekday]bool
	timeInput components.TextInput
	reminders bool
	focus     int

	domainName string
	triggers   []plan.NotificationTrigger
	status     string
	errMsg     string
	loaded     bool
}

var _ screen.Screen = (*PlannerScreen)(nil)
var _ screen.KeyHintProvider = (*PlannerScreen)(nil)

// New creates a PlannerScreen.
func New(svc *screen.Services) *PlannerScreen {
	ti := components.NewTextInput("HH:MM", 5)
	ti.Accept = components.TimeOfDayChars
	ti.Model.Blur()
	return &PlannerScreen{
		svc:       svc,
		days:      make(map[time.Weekday]bool),
		timeInput: ti,
		reminders: true,
	}
}

func (s *PlannerScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		return plannerLoadedMsg{Profile: p, Err: err}
	}
}

func (s *PlannerScreen) Title() string {
	return "Study Planner"
}

func (s *PlannerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case plannerLoadedMsg:
		s.handleLoaded(msg)
		return s, nil

	case scheduleSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.triggers = msg.Triggers
		switch {
		case msg.Cleared:
			s.days = make(map[time.Weekday]bool)
			s.timeInput.SetValue(defaultTime.String())
			s.status = "Schedule cleared. No reminders are registered."
		case len(msg.Triggers) == 0:
			s.status = "Schedule saved. Reminders are off."
		default:
			s.status = fmt.Sprintf("Schedule saved. %d reminders registered.", len(msg.Triggers))
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.focus == rowTime {
		var cmd tea.Cmd
		s.timeInput, cmd = s.timeInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlannerScreen) handleLoaded(msg plannerLoadedMsg) {
	s.loaded = true
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return
	}
	p := msg.Profile
	if p.Domain.Valid() {
		s.domainName = p.Domain.DisplayName()
	}
	if p.Schedule == nil {
		s.timeInput.SetValue(defaultTime.String())
		return
	}
	s.days = make(map[time.Weekday]bool)
	for _, d := range p.Schedule.Days {
		s.days[d] = true
	}
	s.timeInput.SetValue(p.Schedule.Time.String())
	s.reminders = p.Schedule.Reminders
	s.triggers = s.svc.Study.Expander.Expand(*p.Schedule, s.svc.Now())
}

func (s *PlannerScreen) setFocus(row int) tea.Cmd {
	s.focus = (row + rowCount) % rowCount
	if s.focus == rowTime {
		return s.timeInput.Model.Focus()
	}
	s.timeInput.Model.Blur()
	return nil
}

func (s *PlannerScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		return s, s.setFocus(s.focus - 1)
	case "down", "tab":
		return s, s.setFocus(s.focus + 1)
	}

	if s.focus == rowTime {
		if msg.String() == "enter" {
			return s, s.setFocus(rowReminders)
		}
		var cmd tea.Cmd
		s.timeInput, cmd = s.timeInput.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "k":
		return s, s.setFocus(s.focus - 1)
	case "j":
		return s, s.setFocus(s.focus + 1)
	case "space", " ", "enter":
		switch {
		case s.focus < rowTime:
			d := plan.WeekOrder()[s.focus]
			s.days[d] = !s.days[d]
		case s.focus == rowReminders:
			s.reminders = !s.reminders
		case s.focus == rowSave:
			return s, s.save()
		case s.focus == rowClear:
			return s, s.clear()
		}
	}
	return s, nil
}

// schedule builds the edited schedule from the form.
func (s *PlannerScreen) schedule() (plan.StudySchedule, error) {
	t, err := plan.ParseTimeOfDay(s.timeInput.Value())
	if err != nil {
		return plan.StudySchedule{}, err
	}
	sched := plan.StudySchedule{Time: t, Reminders: s.reminders}
	for _, d := range plan.WeekOrder() {
		if s.days[d] {
			sched.Days = append(sched.Days, d)
		}
	}
	return sched, nil
}

func (s *PlannerScreen) save() tea.Cmd {
	sched, err := s.schedule()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if len(sched.Days) == 0 {
		s.errMsg = "Pick at least one study day."
		return nil
	}
	s.errMsg = ""
	study := s.svc.Study
	return func() tea.Msg {
		triggers, err := study.SaveSchedule(context.Background(), sched)
		return scheduleSavedMsg{Triggers: triggers, Err: err}
	}
}

func (s *PlannerScreen) clear() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		err := study.ClearSchedule(context.Background())
		return scheduleSavedMsg{Cleared: true, Err: err}
	}
}

func (s *PlannerScreen) View(width, height int) string {
	if !s.loaded {
		return components.Center(theme.Hint.Render("Loading..."), width, height)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.Heading("Study days", theme.Primary))
	b.WriteString("\n")
	for i, d := range plan.WeekOrder() {
		cb := components.Checkbox{Label: d.String(), Checked: s.days[d], Focused: s.focus == i}
		b.WriteString(cb.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	label := "  Time  "
	if s.focus == rowTime {
		label = theme.Selected.Render("▸ Time  ")
	}
	b.WriteString(label + s.timeInput.View())
	b.WriteString("\n")
	b.WriteString(components.Checkbox{Label: "Reminders", Checked: s.reminders, Focused: s.focus == rowReminders}.View())
	b.WriteString("\n\n")
	b.WriteString(button("Save", s.focus == rowSave) + "   " + button("Clear", s.focus == rowClear))
	b.WriteString("\n")

	if s.status != "" {
		b.WriteString("\n" + theme.Done.Render(s.status) + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Failed.Render(s.errMsg) + "\n")
	}

	form := components.Panel(b.String(), cw/2+8)
	if len(s.triggers) == 0 {
		return components.Center(form, width, height)
	}
	return components.Center(lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", s.renderTriggers(cw/2)), width, height)
}

// renderTriggers lists one line per study day: the advance reminder and
// the session start.
func (s *PlannerScreen) renderTriggers(w int) string {
	var b strings.Builder
	b.WriteString(components.Heading("Weekly reminders", theme.Secondary))
	b.WriteString("\n\n")
	lead := s.svc.Study.Expander.Config().LeadTime
	for i := 0; i+1 < len(s.triggers); i += 2 {
		pre, start := s.triggers[i], s.triggers[i+1]
		preAt := pre.TimeOfDay().String()
		if pre.Weekday != start.Weekday {
			preAt = pre.Weekday.String()[:3] + " " + preAt
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s  %s → %s", start.Weekday.String()[:3], preAt, start.TimeOfDay())))
		b.WriteString("\n")
	}
	if len(s.triggers) > 0 {
		n := notify.Build(s.triggers[0], s.domainName, lead)
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(n.Body))
	}
	return components.Panel(b.String(), w)
}

func button(label string, focused bool) string {
	if focused {
		return theme.Selected.Render("[ " + label + " ]")
	}
	return theme.Unselected.Render("  " + label + "  ")
}
