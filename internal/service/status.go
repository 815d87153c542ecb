// Package service implements the task lifecycle engine and the
// command/query surface the UI layer calls.
package service

import (
	"time"

	"kidtasks/internal/model"
)

// Status is the derived lifecycle classification of a task instance.
// It is recomputed on every evaluation and never persisted; only the
// completion ledger is.
type Status string

const (
	StatusTodo    Status = "todo"
	StatusActive  Status = "active"
	StatusOverdue Status = "overdue"
	StatusDone    Status = "done"
)

// Emphasized reports whether the presentation layer should highlight
// the task. Only the active window gets a distinct treatment; this is
// a display hint, not a separate state.
func (s Status) Emphasized() bool {
	return s == StatusActive
}

// Evaluate classifies task at now. The boolean is false when the task
// has no instance on now's date; the status is meaningless then.
//
// A ledger entry for today wins over the clock: a completed task is
// done no matter the time. Otherwise the half-open window
// [start, end) decides: before it todo, inside it active, at or past
// the end overdue.
func Evaluate(task *model.Task, now time.Time) (Status, bool) {
	if !task.Days.AppliesOn(now) {
		return "", false
	}
	if task.CompletedOn.Done(now) {
		return StatusDone, true
	}
	tod := model.TimeOfDayOf(now)
	switch {
	case tod < task.StartTime:
		return StatusTodo, true
	case tod < task.EndTime:
		return StatusActive, true
	default:
		return StatusOverdue, true
	}
}
