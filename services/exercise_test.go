package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/homegym/homegym/core"
)

// Requirement: LogWorkout rejects names outside [A-Za-z0-9 ], names
// empty after trimming or over 256 chars, and non-positive durations.
func TestExerciseLog_LogWorkout(t *testing.T) {
	tests := []struct {
		name     string
		workout  string
		duration int
		wantErr  error
	}{
		{
			name:     "accepts a plain name",
			workout:  "Running",
			duration: 30,
		},
		{
			name:     "accepts digits and spaces",
			workout:  "5k Run",
			duration: 25,
		},
		{
			name:     "rejects an exclamation mark",
			workout:  "Running!",
			duration: 30,
			wantErr:  core.ErrInvalidWorkoutName,
		},
		{
			name:     "rejects an apostrophe",
			workout:  "Farmer's Walk",
			duration: 10,
			wantErr:  core.ErrInvalidWorkoutName,
		},
		{
			name:     "rejects a hyphen",
			workout:  "Warm-up",
			duration: 10,
			wantErr:  core.ErrInvalidWorkoutName,
		},
		{
			name:     "rejects a whitespace-only name",
			workout:  "   ",
			duration: 10,
			wantErr:  core.ErrInvalidWorkoutName,
		},
		{
			name:     "rejects a name longer than 256 characters",
			workout:  strings.Repeat("a", 257),
			duration: 10,
			wantErr:  core.ErrInvalidWorkoutName,
		},
		{
			name:     "rejects a zero duration",
			workout:  "Running",
			duration: 0,
			wantErr:  core.ErrInvalidDuration,
		},
		{
			name:     "rejects a negative duration",
			workout:  "Running",
			duration: -1,
			wantErr:  core.ErrInvalidDuration,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			account := loggedInAccount(t)
			log := NewExerciseLog(account)

			err := log.LogWorkout(test.workout, test.duration)

			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("LogWorkout() error = %v, want %v", err, test.wantErr)
				}
				if len(account.Exercises) != 0 {
					t.Error("a rejected workout must not be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("LogWorkout() unexpected error: %v", err)
			}
			if len(account.Exercises) != 1 || account.Exercises[0].Name != test.workout {
				t.Fatalf("Exercises = %v, want the logged workout", account.Exercises)
			}
		})
	}
}

// Requirement: the exercise log does not require the session flag.
func TestExerciseLog_NoLoginGate(t *testing.T) {
	account, err := core.NewAccount("johndoe", "Password1!", "johndoe@example.com")
	if err != nil {
		t.Fatalf("NewAccount() failed: %v", err)
	}

	log := NewExerciseLog(account)
	if err := log.LogWorkout("Running", 30); err != nil {
		t.Fatalf("LogWorkout() should not be session-gated: %v", err)
	}
}

// Requirement: performed workouts accumulate in insertion order and are
// never partitioned by date.
func TestExerciseLog_AppendsInOrder(t *testing.T) {
	account := loggedInAccount(t)
	log := NewExerciseLog(account)

	names := []string{"Running", "Rowing", "Cycling"}
	for _, n := range names {
		if err := log.LogWorkout(n, 10); err != nil {
			t.Fatalf("LogWorkout(%q) failed: %v", n, err)
		}
	}

	if len(account.Exercises) != len(names) {
		t.Fatalf("Exercises has %d entries, want %d", len(account.Exercises), len(names))
	}
	for i, n := range names {
		if account.Exercises[i].Name != n {
			t.Errorf("Exercises[%d].Name = %q, want %q", i, account.Exercises[i].Name, n)
		}
	}
}

// Requirement: Feedback sums the date's calendar entries for both goal
// and achieved, so the reported shortfall is always zero.
func TestExerciseLog_Feedback(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		plan    map[string][]core.Workout
		want    string
		wantErr error
	}{
		{
			name: "reports the planned total with zero shortfall",
			date: "2024-08-01",
			plan: map[string][]core.Workout{
				"2024-08-01": {
					{Name: "Running", Duration: 30},
					{Name: "Rowing", Duration: 15},
				},
			},
			want: "Total exercise duration: 45 minutes, 0 minutes short of your goal",
		},
		{
			name: "reports the fixed zero message for an unplanned date",
			date: "2024-08-01",
			want: "Total exercise duration: 0 minutes, 0 minutes short of your goal",
		},
		{
			name: "trims the date before validating",
			date: "  2024-08-01  ",
			plan: map[string][]core.Workout{
				"2024-08-01": {{Name: "Running", Duration: 30}},
			},
			want: "Total exercise duration: 30 minutes, 0 minutes short of your goal",
		},
		{
			name: "accepts February 30 under the coarse day bound",
			date: "2024-02-30",
			want: "Total exercise duration: 0 minutes, 0 minutes short of your goal",
		},
		{
			name:    "rejects month 13",
			date:    "2024-13-01",
			wantErr: core.ErrInvalidDate,
		},
		{
			name:    "rejects day 32",
			date:    "2024-01-32",
			wantErr: core.ErrInvalidDate,
		},
		{
			name:    "rejects a malformed date",
			date:    "2024-8-1",
			wantErr: core.ErrInvalidDate,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			account := loggedInAccount(t)
			for date, workouts := range test.plan {
				account.Calendar[date] = workouts
			}
			log := NewExerciseLog(account)

			got, err := log.Feedback(test.date)

			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Feedback() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Feedback() unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("Feedback() = %q, want %q", got, test.want)
			}
		})
	}
}

// Requirement: Feedback reads the calendar, not the exercise log - a
// busy log without a plan for the date still reports the zero message.
func TestExerciseLog_FeedbackIgnoresExercises(t *testing.T) {
	account := loggedInAccount(t)
	log := NewExerciseLog(account)
	if err := log.LogWorkout("Running", 90); err != nil {
		t.Fatalf("LogWorkout() failed: %v", err)
	}

	got, err := log.Feedback("2024-08-01")
	if err != nil {
		t.Fatalf("Feedback() failed: %v", err)
	}
	want := "Total exercise duration: 0 minutes, 0 minutes short of your goal"
	if got != want {
		t.Errorf("Feedback() = %q, want %q", got, want)
	}
}
