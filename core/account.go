package core

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// passwordSymbols is the accepted symbol set for passwords.
const passwordSymbols = "!@#$%^&*()_+"

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Account represents a registered member of the community.
//
// This is the "identity" - who someone is, what they planned, and what
// they actually did. Credentials are stored as given; matching is always
// byte-exact.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Never expose in JSON
	Email    string `json:"email"`

	// LoggedIn is the Account's own session flag. It is set by
	// SessionManager.Login and cleared only by Account.Logout - the
	// session manager's Logout leaves it untouched.
	LoggedIn bool `json:"loggedIn"`

	// Exercises holds performed workouts in the order they were logged.
	// It is never partitioned by date.
	Exercises []Workout `json:"exercises"`

	// Calendar maps a YYYY-MM-DD date to planned workouts in insertion
	// order. Entries are created on write only.
	Calendar map[string][]Workout `json:"calendar"`

	// Rank is the 1-based standing from the last ranking recompute, or
	// nil if the Account has never logged an exercise.
	Rank *int `json:"rank,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewAccount validates the credential fields in order (username, then
// password, then email) and returns a fresh Account. The first failing
// field wins and is named by the wrapped sentinel. Email is trimmed
// before validation and storage; a username carrying surrounding
// whitespace is rejected, not trimmed.
func NewAccount(username, password, email string) (*Account, error) {
	if !validUsername(username) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	if !validPassword(password) {
		return nil, ErrInvalidPassword
	}
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return &Account{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  password,
		Email:     email,
		Exercises: []Workout{},
		Calendar:  make(map[string][]Workout),
		CreatedAt: time.Now(),
	}, nil
}

// Login sets the Account's session flag. No other state changes.
func (a *Account) Login() { a.LoggedIn = true }

// Logout clears the Account's session flag. No other state changes.
func (a *Account) Logout() { a.LoggedIn = false }

// TotalDuration sums the durations of all performed workouts.
func (a *Account) TotalDuration() int {
	total := 0
	for _, w := range a.Exercises {
		total += w.Duration
	}
	return total
}

func validUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	if username != strings.TrimSpace(username) {
		return false
	}
	return usernameRegex.MatchString(username)
}

func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	if !strings.ContainsAny(password, "0123456789") {
		return false
	}
	return strings.ContainsAny(password, passwordSymbols)
}

func validEmail(email string) bool {
	if len(email) < 1 || len(email) > 254 {
		return false
	}
	if !emailRegex.MatchString(email) {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	if strings.HasPrefix(email, ".") || strings.HasSuffix(email, ".") {
		return false
	}
	return strings.Count(email, "@") == 1
}
