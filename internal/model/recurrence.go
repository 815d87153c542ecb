package model

import (
	"errors"
	"fmt"
	"time"
)

// AllDays is the recurrence sentinel matching every calendar date.
const AllDays = "all"

// Weekdays lists the accepted day names, Monday first.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Recurrence describes which calendar dates a task occurs on: either
// the single all-days sentinel or a non-empty subset of weekday names.
type Recurrence []string

// NewRecurrence validates a day selection and normalizes it: days are
// deduplicated and ordered Monday first, and selecting all seven
// collapses to the sentinel.
func NewRecurrence(days []string) (Recurrence, error) {
	if len(days) == 0 {
		return nil, errors.New("at least one day is required")
	}
	if len(days) == 1 && days[0] == AllDays {
		return Recurrence{AllDays}, nil
	}

	selected := map[string]bool{}
	for _, day := range days {
		valid := false
		for _, name := range Weekdays {
			if day == name {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown day %q", day)
		}
		selected[day] = true
	}

	if len(selected) == len(Weekdays) {
		return Recurrence{AllDays}, nil
	}
	out := make(Recurrence, 0, len(selected))
	for _, name := range Weekdays {
		if selected[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

// AppliesOn reports whether a task with this recurrence has an
// instance on date's calendar day. Dates are the caller's local wall
// clock; no timezone conversion happens here.
func (r Recurrence) AppliesOn(date time.Time) bool {
	name := date.Weekday().String()
	for _, day := range r {
		if day == AllDays || day == name {
			return true
		}
	}
	return false
}
