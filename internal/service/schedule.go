package service

import (
	"time"
)

// ScheduleState classifies a quiz's joinability at a point in time.
type ScheduleState string

const (
	ScheduleUpcoming ScheduleState = "upcoming"
	ScheduleLive     ScheduleState = "live"
	ScheduleExpired  ScheduleState = "expired"
	// ScheduleInvalid marks a quiz whose window is missing a bound. It is
	// distinct from the other three states and never joinable.
	ScheduleInvalid ScheduleState = "invalid"
)

// Joinable reports whether an attempt may be started in this state.
func (s ScheduleState) Joinable() bool {
	return s == ScheduleLive
}

// ClassifySchedule maps a quiz window to exactly one state. Boundaries are
// inclusive on both ends: start <= now <= end is live.
func ClassifySchedule(start, end *time.Time, now time.Time) ScheduleState {
	if start == nil || end == nil {
		return ScheduleInvalid
	}
	if now.Before(*start) {
		return ScheduleUpcoming
	}
	if now.After(*end) {
		return ScheduleExpired
	}
	return ScheduleLive
}
