package planner

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"09:00", TimeOfDay{9, 0}, false},
		{"9:05", TimeOfDay{9, 5}, false},
		{" 23:59 ", TimeOfDay{23, 59}, false},
		{"00:00", TimeOfDay{0, 0}, false},
		{"24:00", TimeOfDay{}, true},
		{"12:60", TimeOfDay{}, true},
		{"9:5", TimeOfDay{}, true},
		{"noon", TimeOfDay{}, true},
		{"-1:30", TimeOfDay{}, true},
		{"+9:00", TimeOfDay{}, true},
		{"009:00", TimeOfDay{}, true},
		{"9:+5", TimeOfDay{}, true},
		{":30", TimeOfDay{}, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeOfDay(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"Monday", time.Monday, false},
		{"wed", time.Wednesday, false},
		{"SUN", time.Sunday, false},
		{"thurs", time.Thursday, false},
		{"t", 0, true},
		{"funday", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWeekday(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseWeekday(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStudySchedule_JSONRoundTripUsesNames(t *testing.T) {
	s := StudySchedule{
		Days:      []time.Weekday{time.Sunday, time.Monday},
		Time:      TimeOfDay{Hour: 18, Minute: 30},
		Reminders: true,
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"days":["Monday","Sunday"],"time":"18:30","reminders":true}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}

	var back StudySchedule
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Time != s.Time || !back.Reminders || !back.HasDay(time.Sunday) || !back.HasDay(time.Monday) {
		t.Errorf("round trip = %+v", back)
	}
}

func TestStudySchedule_ToggleDay(t *testing.T) {
	var s StudySchedule
	s.ToggleDay(time.Friday)
	if !s.HasDay(time.Friday) {
		t.Fatal("Friday should be selected")
	}
	s.ToggleDay(time.Friday)
	if s.HasDay(time.Friday) {
		t.Fatal("Friday should be cleared")
	}
}

func TestStudySchedule_Validate(t *testing.T) {
	ok := StudySchedule{Days: []time.Weekday{time.Monday}, Time: TimeOfDay{Hour: 8}}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid schedule: %v", err)
	}

	bad := StudySchedule{Days: []time.Weekday{9}, Time: TimeOfDay{Hour: 8}}
	if err := bad.Validate(); err == nil {
		t.Error("expected weekday 9 to be rejected")
	}

	badTime := StudySchedule{Time: TimeOfDay{Hour: 25}}
	if err := badTime.Validate(); err == nil {
		t.Error("expected hour 25 to be rejected")
	}
}

func TestUpcoming(t *testing.T) {
	s := StudySchedule{
		Days: []time.Weekday{time.Monday, time.Wednesday},
		Time: TimeOfDay{Hour: 9},
	}

	got := Upcoming(s, wednesdayNoon, 7)
	// Wednesday 09:00 is already past; next are Monday 19th only.
	if len(got) != 1 {
		t.Fatalf("got %d sessions, want 1: %v", len(got), got)
	}
	want := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	if !got[0].Start.Equal(want) {
		t.Errorf("start = %s, want %s", got[0].Start, want)
	}

	got = Upcoming(s, wednesdayNoon, 14)
	if len(got) != 3 {
		t.Errorf("two weeks: got %d sessions, want 3", len(got))
	}
}
