package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/homegym/homegym/core"
)

// exerciseNameRegex is stricter than the calendar's name rule: only
// letters, digits and spaces - no punctuation, apostrophes included.
var exerciseNameRegex = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

// ExerciseLog records performed workouts for a single Account and
// reports progress against the calendar's plan for a date. Unlike the
// Calendar it is not gated on the session flag.
type ExerciseLog struct {
	account *core.Account
}

func NewExerciseLog(account *core.Account) *ExerciseLog {
	return &ExerciseLog{account: account}
}

// LogWorkout appends a performed workout to the Account's exercise
// sequence. The sequence is never partitioned by date.
func (l *ExerciseLog) LogWorkout(name string, duration int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", core.ErrInvalidWorkoutName)
	}
	if !exerciseNameRegex.MatchString(name) {
		return fmt.Errorf("%w: only letters, digits and spaces are allowed", core.ErrInvalidWorkoutName)
	}
	if len(name) > maxWorkoutNameLen {
		return fmt.Errorf("%w: name cannot exceed %d characters", core.ErrInvalidWorkoutName, maxWorkoutNameLen)
	}
	if duration <= 0 {
		return core.ErrInvalidDuration
	}

	l.account.Exercises = append(l.account.Exercises, core.Workout{
		Name:     name,
		Duration: duration,
	})
	return nil
}

// Feedback reports the Account's total against its goal for a date.
//
// Both totals are summed from the calendar entries of that date, so the
// shortfall is always zero under the current rules. The date is trimmed
// and shape-checked, with a coarse month 1-12 / day 1-31 bound -
// February 30 passes.
func (l *ExerciseLog) Feedback(date string) (string, error) {
	date = strings.TrimSpace(date)
	if !dateRegex.MatchString(date) {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: non-existent date %q", core.ErrInvalidDate, date)
	}

	planned := l.account.Calendar[date]
	if len(planned) == 0 {
		return "Total exercise duration: 0 minutes, 0 minutes short of your goal", nil
	}

	goal := 0
	for _, w := range planned {
		goal += w.Duration
	}
	achieved := goal

	if achieved >= goal {
		return fmt.Sprintf("Total exercise duration: %d minutes, 0 minutes short of your goal", achieved), nil
	}
	return fmt.Sprintf("Total exercise duration: %d minutes, %d minutes short of your goal", achieved, goal-achieved), nil
}
