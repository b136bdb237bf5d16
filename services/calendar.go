package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/homegym/homegym/core"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// maxWorkoutNameLen bounds workout names for both the calendar and the
// exercise log.
const maxWorkoutNameLen = 256

// Calendar plans workouts per date for a single Account.
type Calendar struct {
	account *core.Account
}

// NewCalendar opens the calendar of a logged-in Account. Construction
// fails if the Account's session flag is not set; the caller must
// authenticate first.
func NewCalendar(account *core.Account) (*Calendar, error) {
	if !account.LoggedIn {
		return nil, fmt.Errorf("%w: calendar access", core.ErrLoginRequired)
	}
	return &Calendar{account: account}, nil
}

// AddWorkout appends a planned workout to the date's sequence, creating
// the sequence if the date is new. The date is shape-checked only -
// "2024-13-45" is accepted. The name may carry any characters but must
// be non-empty after trimming and at most 256 characters.
func (c *Calendar) AddWorkout(date, name string, duration int) error {
	if !dateRegex.MatchString(date) {
		return fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", core.ErrInvalidWorkoutName)
	}
	if len(name) > maxWorkoutNameLen {
		return fmt.Errorf("%w: name cannot exceed %d characters", core.ErrInvalidWorkoutName, maxWorkoutNameLen)
	}
	if duration <= 0 {
		return core.ErrInvalidDuration
	}

	c.account.Calendar[date] = append(c.account.Calendar[date], core.Workout{
		Name:     name,
		Duration: duration,
	})
	return nil
}

// Plan returns the planned workouts for a date in insertion order. An
// unknown date yields an empty sequence, never an error, and no entry
// is created as a side effect of the lookup.
func (c *Calendar) Plan(date string) ([]core.Workout, error) {
	if !dateRegex.MatchString(date) {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}

	plan, ok := c.account.Calendar[date]
	if !ok {
		return []core.Workout{}, nil
	}
	return plan, nil
}
