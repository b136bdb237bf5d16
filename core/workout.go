package core

// Workout is a single named activity measured in whole minutes.
//
// The same shape serves both roles: planned entries keyed by date in an
// Account's calendar, and performed entries appended to its exercise log.
type Workout struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"` // minutes, always > 0
}
