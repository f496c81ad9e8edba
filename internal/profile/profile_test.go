package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/planner"
)

var now = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func TestSetDomain_ResetsRoadmapOnChange(t *testing.T) {
	p := &Profile{}
	require.NoError(t, p.SetDomain(domain.Cyber))
	require.NoError(t, p.CompleteRoadmapItem("Cryptography"))

	// Same domain keeps progress.
	require.NoError(t, p.SetDomain(domain.Cyber))
	assert.Equal(t, []string{"Cryptography"}, p.CompletedRoadmap)

	require.NoError(t, p.SetDomain(domain.Data))
	assert.Empty(t, p.CompletedRoadmap)
	assert.Equal(t, domain.Data, p.Domain)
}

func TestSetDomain_RejectsUnknown(t *testing.T) {
	p := &Profile{}
	err := p.SetDomain("devops")
	assert.True(t, errors.Is(err, domain.ErrUnknown))
}

func TestAddTestScore(t *testing.T) {
	p := &Profile{}
	ts, err := p.AddTestScore(82, "SQL Fundamentals", now)
	require.NoError(t, err)
	assert.NotEmpty(t, ts.ID)
	assert.Len(t, p.TestScores, 1)

	_, err = p.AddTestScore(101, "x", now)
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = p.AddTestScore(-1, "x", now)
	assert.ErrorIs(t, err, ErrInvalidScore)
	assert.Len(t, p.TestScores, 1)
}

func TestAddInterviewResult(t *testing.T) {
	p := &Profile{}
	a, err := p.AddInterviewResult(90, "Clear answer", domain.AIML, now)
	require.NoError(t, err)
	b, err := p.AddInterviewResult(60, "Needs depth", domain.AIML, now)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = p.AddInterviewResult(50, "", "devops", now)
	assert.ErrorIs(t, err, domain.ErrUnknown)
}

func TestCompleteRoadmapItem(t *testing.T) {
	p := &Profile{}
	assert.ErrorIs(t, p.CompleteRoadmapItem("Cryptography"), ErrNoDomain)

	require.NoError(t, p.SetDomain(domain.Cyber))
	require.NoError(t, p.CompleteRoadmapItem("Cryptography"))
	require.NoError(t, p.CompleteRoadmapItem("Cryptography"))
	assert.Len(t, p.CompletedRoadmap, 1)

	assert.ErrorIs(t, p.CompleteRoadmapItem("Figma/Sketch"), ErrNotOnRoadmap)

	done, total := p.RoadmapProgress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 6, total)
}

func TestSetStudySchedule(t *testing.T) {
	p := &Profile{}
	s := planner.StudySchedule{
		Days:      []time.Weekday{time.Monday},
		Time:      planner.TimeOfDay{Hour: 7, Minute: 30},
		Reminders: true,
	}
	require.NoError(t, p.SetStudySchedule(s))
	require.NotNil(t, p.Schedule)
	assert.True(t, p.Schedule.HasDay(time.Monday))

	bad := planner.StudySchedule{Time: planner.TimeOfDay{Hour: 30}}
	assert.Error(t, p.SetStudySchedule(bad))
	assert.Equal(t, 7, p.Schedule.Time.Hour, "failed set must not overwrite")

	p.ClearStudySchedule()
	assert.Nil(t, p.Schedule)
}

func TestCodecRoundTrip(t *testing.T) {
	p := &Profile{}
	require.NoError(t, p.SetDomain(domain.UIUX))
	require.NoError(t, p.SetStudySchedule(planner.StudySchedule{
		Days: []time.Weekday{time.Saturday}, Time: planner.TimeOfDay{Hour: 10},
	}))
	_, err := p.AddTestScore(75, "Wireframing", now)
	require.NoError(t, err)

	b, err := Encode(p)
	require.NoError(t, err)
	back, err := Decode(b)
	require.NoError(t, err)

	assert.Equal(t, domain.UIUX, back.Domain)
	assert.True(t, back.Schedule.HasDay(time.Saturday))
	assert.Equal(t, p.TestScores[0].ID, back.TestScores[0].ID)
	assert.True(t, back.TestScores[0].Date.Equal(now))
}

func TestDecode_Empty(t *testing.T) {
	p, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Key(""), p.Domain)
	assert.Nil(t, p.Schedule)
}

func TestMemoryRepo_UpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	require.NoError(t, r.Update(ctx, func(p *Profile) error {
		return p.SetDomain(domain.FullStack)
	}))

	boom := errors.New("boom")
	err := r.Update(ctx, func(p *Profile) error {
		p.Domain = domain.Data
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FullStack, p.Domain)

	require.NoError(t, r.Reset(ctx))
	p, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, p.Domain)
}
