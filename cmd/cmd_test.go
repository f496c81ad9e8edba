package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/store"
)

// resetFlags restores every flag in the tree, since the command
// variables are shared between test runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type harness struct {
	t      *testing.T
	dbPath string
	config string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PATHWISE_DB", "")
	t.Setenv("PATHWISE_LEAD_TIME", "")
	return &harness{
		t:      t,
		dbPath: filepath.Join(dir, "pathwise.db"),
		config: filepath.Join(dir, "missing.yaml"),
	}
}

// run executes the CLI with stdin and returns what it printed.
func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", h.dbPath, "--config", h.config}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (h *harness) adopt(k domain.Key) {
	h.t.Helper()
	st, err := store.Open(h.dbPath)
	require.NoError(h.t, err)
	defer st.Close()
	require.NoError(h.t, st.ProfileRepo().Update(context.Background(), func(p *profile.Profile) error {
		return p.SetDomain(k)
	}))
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathwise")
}

func TestPlanSetShowClear(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "plan", "set", "--days", "fri,mon", "--time", "18:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Days:      Mon, Fri")
	assert.Contains(t, out, "Mon  18:25  pre-session")
	assert.Contains(t, out, "Fri  18:30  start")

	out, err = h.run("", "reminders")
	require.NoError(t, err)
	assert.Contains(t, out, "Study Session Starting Soon")
	assert.Contains(t, out, "Your tech study session starts in 5 minutes")
	assert.Equal(t, 4, strings.Count(out, "Study"), out)

	out, err = h.run("", "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Time:      18:30")

	_, err = h.run("", "plan", "clear")
	require.NoError(t, err)
	out, err = h.run("", "reminders")
	require.NoError(t, err)
	assert.Contains(t, out, "No reminders registered.")
}

func TestPlanSet_RemindersOff(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("", "plan", "set", "--days", "sat", "--reminders=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Reminders: off")
	assert.NotContains(t, out, "Reminder triggers")
}

func TestPlanSet_BadInput(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "plan", "set", "--days", "funday")
	assert.Error(t, err)
	_, err = h.run("", "plan", "set", "--days", "mon", "--time", "25:00")
	assert.Error(t, err)
}

func TestRemindersNameTheTrack(t *testing.T) {
	h := newHarness(t)
	h.adopt(domain.Cyber)
	_, err := h.run("", "plan", "set", "--days", "wed", "--time", "07:00")
	require.NoError(t, err)

	out, err := h.run("", "reminders")
	require.NoError(t, err)
	assert.Contains(t, out, "Time to work on your Cybersecurity skills")
}

func TestScoreAddAndStats(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "score", "add", "82", "--topic", "SQL")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 82 (Good)")

	_, err = h.run("", "score", "add", "101")
	assert.ErrorIs(t, err, profile.ErrInvalidScore)

	out, err = h.run("", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Taken:    1")
	assert.Contains(t, out, "Average:  82.0")
	assert.Contains(t, out, "No interviews recorded.")
	assert.Contains(t, out, "No study plan.")
}

func TestRoadmap(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "roadmap")
	assert.ErrorIs(t, err, profile.ErrNoDomain)

	h.adopt(domain.Data)
	items := domain.Roadmap(domain.Data)

	out, err := h.run("", "roadmap", "--complete", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "(1/6 done)")
	assert.Contains(t, out, "2. [x] "+items[1])
	assert.Contains(t, out, "1. [ ] "+items[0])

	_, err = h.run("", "roadmap", "--complete", "7")
	assert.Error(t, err)

	out, err = h.run("", "roadmap")
	require.NoError(t, err)
	assert.Contains(t, out, "(1/6 done)")
}

func TestQuiz_RepromptsAndFinishes(t *testing.T) {
	h := newHarness(t)
	answers := "x\n9\n" + strings.Repeat("2\n", 5)

	out, err := h.run(answers, "quiz", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 5 of 5")
	assert.Contains(t, out, "Pick a number from 1 to")
}

func TestQuiz_EOFAborts(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("1\n", "quiz", "--seed", "3")
	assert.ErrorIs(t, err, errAborted)
}

func TestBankCheck(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("", "bank", "check", filepath.Join("..", "internal", "quiz", "bank.json"))
	require.NoError(t, err)
	assert.Contains(t, out, ": ok")
	assert.Contains(t, out, "Cybersecurity")

	_, err = h.run("", "bank", "check", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "score", "add", "50")
	require.NoError(t, err)

	_, err = h.run("n\n", "reset")
	assert.ErrorIs(t, err, errAborted)

	out, err := h.run("", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All learner data removed.")

	out, err = h.run("", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No tests recorded.")
}

func TestLLMList_Empty(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("", "llm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")
}
