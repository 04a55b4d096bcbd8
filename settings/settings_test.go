package settings

import (
	"errors"
	"testing"
	"time"
)

func TestSetTimeoutBounds(t *testing.T) {
	st := New(30)

	cases := []struct {
		seconds int
		wantErr bool
	}{
		{5, true},
		{9, true},
		{10, false},
		{30, false},
		{600, false},
		{601, true},
		{-1, true},
	}
	for _, tc := range cases {
		err := st.SetTimeout(tc.seconds)
		if tc.wantErr && !errors.Is(err, ErrTimeoutRange) {
			t.Errorf("SetTimeout(%d) = %v, want ErrTimeoutRange", tc.seconds, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("SetTimeout(%d) = %v, want nil", tc.seconds, err)
		}
	}

	if err := st.SetTimeout(45); err != nil {
		t.Fatal(err)
	}
	if got := st.Timeout(); got != 45*time.Second {
		t.Fatalf("Timeout = %v, want 45s", got)
	}
}

func TestRejectedTimeoutLeavesValue(t *testing.T) {
	st := New(30)
	if err := st.SetTimeout(5); err == nil {
		t.Fatal("SetTimeout(5) should fail")
	}
	if got := st.TimeoutSeconds(); got != 30 {
		t.Fatalf("TimeoutSeconds = %d after rejected set, want 30", got)
	}
}

func TestNewClampsInvalidDefault(t *testing.T) {
	st := New(0)
	if got := st.TimeoutSeconds(); got != 30 {
		t.Fatalf("TimeoutSeconds = %d, want fallback 30", got)
	}
}

func TestSetActiveHoursBounds(t *testing.T) {
	st := New(30)

	if err := st.SetActiveHours(8, 24); !errors.Is(err, ErrHourRange) {
		t.Fatalf("SetActiveHours(8, 24) = %v, want ErrHourRange", err)
	}
	if err := st.SetActiveHours(-1, 10); !errors.Is(err, ErrHourRange) {
		t.Fatalf("SetActiveHours(-1, 10) = %v, want ErrHourRange", err)
	}
	if err := st.SetActiveHours(9, 17); err != nil {
		t.Fatal(err)
	}
	start, end := st.ActiveHours()
	if start != 9 || end != 17 {
		t.Fatalf("ActiveHours = (%d, %d), want (9, 17)", start, end)
	}
}

func TestToggles(t *testing.T) {
	st := New(30)

	if st.InteractionMode() {
		t.Fatal("interaction mode should default off")
	}
	if !st.ToggleInteraction() || !st.InteractionMode() {
		t.Fatal("ToggleInteraction should flip on")
	}
	if st.ToggleInteraction() {
		t.Fatal("second ToggleInteraction should flip off")
	}

	if !st.AntiSpam() {
		t.Fatal("anti-spam should default on")
	}
	if st.ToggleAntiSpam() {
		t.Fatal("ToggleAntiSpam should flip off")
	}

	if !st.Rewards() {
		t.Fatal("rewards should default on")
	}
	if st.ToggleRewards() {
		t.Fatal("ToggleRewards should flip off")
	}
}

func TestPauseResume(t *testing.T) {
	st := New(30)
	st.Pause()
	if !st.Paused() {
		t.Fatal("Paused = false after Pause")
	}
	st.Resume()
	if st.Paused() {
		t.Fatal("Paused = true after Resume")
	}
}

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 30, 0, 0, time.UTC)
}

func TestActiveAt(t *testing.T) {
	st := New(30)

	// Scheduled mode off: always active.
	if !st.ActiveAt(at(3)) {
		t.Fatal("unscheduled store should always be active")
	}

	st.ToggleScheduled()
	if err := st.SetActiveHours(8, 22); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		hour int
		want bool
	}{
		{7, false},
		{8, true},
		{15, true},
		{21, true},
		{22, false},
		{23, false},
	}
	for _, tc := range cases {
		if got := st.ActiveAt(at(tc.hour)); got != tc.want {
			t.Errorf("ActiveAt(%02d:30) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestActiveAtOvernightWindow(t *testing.T) {
	st := New(30)
	st.ToggleScheduled()
	if err := st.SetActiveHours(22, 6); err != nil {
		t.Fatal(err)
	}

	for _, hour := range []int{22, 23, 0, 5} {
		if !st.ActiveAt(at(hour)) {
			t.Errorf("ActiveAt(%02d:30) = false, want true inside overnight window", hour)
		}
	}
	for _, hour := range []int{6, 12, 21} {
		if st.ActiveAt(at(hour)) {
			t.Errorf("ActiveAt(%02d:30) = true, want false outside overnight window", hour)
		}
	}
}

func TestActiveAtPausedWinsOverSchedule(t *testing.T) {
	st := New(30)
	st.Pause()
	if st.ActiveAt(at(12)) {
		t.Fatal("paused store must never be active")
	}
}

func TestBannedWordsCopy(t *testing.T) {
	st := New(30)
	words := st.BannedWords()
	if len(words) == 0 {
		t.Fatal("expected default banned words")
	}
	words[0] = "mutated"
	if st.BannedWords()[0] == "mutated" {
		t.Fatal("BannedWords must return a copy")
	}
}

func TestWelcomeTemplate(t *testing.T) {
	st := New(30)
	if st.Welcome() != DefaultWelcome {
		t.Fatal("unexpected default welcome")
	}
	st.SetWelcome("Hi {name}, {timer}s on the clock")
	if got := st.Welcome(); got != "Hi {name}, {timer}s on the clock" {
		t.Fatalf("Welcome = %q", got)
	}
}
