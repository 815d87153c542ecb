package service

import (
	"testing"
	"time"

	"kidtasks/internal/model"
)

// monday returns 2025-07-21 (a Monday) at the given wall-clock time.
func monday(hour, min int) time.Time {
	return time.Date(2025, time.July, 21, hour, min, 0, 0, time.UTC)
}

func windowTask() *model.Task {
	return &model.Task{
		ID:        "t1",
		Text:      "Brush teeth",
		StartTime: 9 * 60,
		EndTime:   10 * 60,
		Days:      model.Recurrence{model.AllDays},
	}
}

func TestEvaluateTimeWindow(t *testing.T) {
	task := windowTask()

	cases := []struct {
		now  time.Time
		want Status
	}{
		{monday(8, 59), StatusTodo},
		{monday(9, 0), StatusActive},
		{monday(9, 30), StatusActive},
		{monday(9, 59), StatusActive},
		{monday(10, 0), StatusOverdue},
		{monday(10, 1), StatusOverdue},
	}
	for _, tc := range cases {
		got, ok := Evaluate(task, tc.now)
		if !ok {
			t.Fatalf("%s: expected task to apply", tc.now.Format("15:04"))
		}
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.now.Format("15:04"), tc.want, got)
		}
	}
}

func TestEvaluateDoneWinsOverClock(t *testing.T) {
	task := windowTask()
	task.CompletedOn = model.Ledger{model.DateKey(monday(0, 0)): true}

	for _, now := range []time.Time{monday(8, 0), monday(9, 30), monday(23, 0)} {
		got, ok := Evaluate(task, now)
		if !ok || got != StatusDone {
			t.Fatalf("%s: expected done, got %s (applies=%v)", now.Format("15:04"), got, ok)
		}
	}
}

func TestEvaluateExcludesNonRecurringDates(t *testing.T) {
	task := windowTask()
	task.Days = model.Recurrence{"Monday"}

	if _, ok := Evaluate(task, monday(9, 30)); !ok {
		t.Fatalf("expected task to apply on Monday")
	}
	tuesday := monday(9, 30).AddDate(0, 0, 1)
	if _, ok := Evaluate(task, tuesday); ok {
		t.Fatalf("expected task to be excluded on Tuesday")
	}
	// Completion on a non-recurring date still excludes the task.
	task.CompletedOn = model.Ledger{model.DateKey(tuesday): true}
	if _, ok := Evaluate(task, tuesday); ok {
		t.Fatalf("ledger entry must not override the recurrence")
	}
}

func TestOnlyActiveIsEmphasized(t *testing.T) {
	if !StatusActive.Emphasized() {
		t.Fatalf("active should carry the emphasis hint")
	}
	for _, s := range []Status{StatusTodo, StatusOverdue, StatusDone} {
		if s.Emphasized() {
			t.Fatalf("%s should not carry the emphasis hint", s)
		}
	}
}
