package model

import "time"

// Task is a recurring, time-boxed item owned by a child. Its lifecycle
// state is never stored; only the completion ledger is.
type Task struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	StartTime   TimeOfDay  `json:"start_time"`
	EndTime     TimeOfDay  `json:"end_time"`
	Days        Recurrence `json:"days"`
	CompletedOn Ledger     `json:"completed_on"`
}

// Ledger maps a calendar date key to whether the task was completed on
// that date. Entries accumulate for the task's lifetime and are never
// pruned.
type Ledger map[string]bool

// DateKey formats t's calendar date as a ledger key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Done reports the ledger entry for date's calendar day. A missing
// entry counts as not completed.
func (l Ledger) Done(date time.Time) bool {
	return l[DateKey(date)]
}

// Toggle flips the completion entry for date and returns the new
// value. A missing entry counts as false, so the first toggle marks
// the task done; toggling twice restores the original value.
func (t *Task) Toggle(date time.Time) bool {
	if t.CompletedOn == nil {
		t.CompletedOn = Ledger{}
	}
	key := DateKey(date)
	t.CompletedOn[key] = !t.CompletedOn[key]
	return t.CompletedOn[key]
}
