package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestToggleRoundTrip(t *testing.T) {
	task := &Task{ID: "t1"}
	date := time.Date(2025, time.July, 21, 10, 0, 0, 0, time.UTC)

	if task.CompletedOn.Done(date) {
		t.Fatalf("new task should not be completed")
	}
	if done := task.Toggle(date); !done {
		t.Fatalf("first toggle should mark done")
	}
	if !task.CompletedOn.Done(date) {
		t.Fatalf("ledger should report done after toggle")
	}
	if done := task.Toggle(date); done {
		t.Fatalf("second toggle should restore not-done")
	}
}

func TestLedgerIsDateScoped(t *testing.T) {
	task := &Task{ID: "t1"}
	monday := time.Date(2025, time.July, 21, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	task.Toggle(monday)
	if !task.CompletedOn.Done(monday) {
		t.Fatalf("expected done on Monday")
	}
	if task.CompletedOn.Done(tuesday) {
		t.Fatalf("Monday completion must not leak into Tuesday")
	}
}

func TestDateKeyFormat(t *testing.T) {
	date := time.Date(2025, time.July, 5, 23, 59, 0, 0, time.UTC)
	if got := DateKey(date); got != "2025-07-05" {
		t.Fatalf("expected 2025-07-05, got %q", got)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tod != 9*60+5 {
		t.Fatalf("expected 545 minutes, got %d", tod)
	}
	if tod.String() != "09:05" {
		t.Fatalf("expected 09:05, got %q", tod.String())
	}

	for _, bad := range []string{"", "nine", "10:61", "10.30"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestTaskJSONRoundTrip(t *testing.T) {
	task := Task{
		ID:          "t1",
		Text:        "Brush teeth",
		StartTime:   9 * 60,
		EndTime:     9*60 + 30,
		Days:        Recurrence{"Monday"},
		CompletedOn: Ledger{"2025-07-21": true},
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Task
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.StartTime != task.StartTime || got.EndTime != task.EndTime {
		t.Fatalf("time window changed: %s-%s", got.StartTime, got.EndTime)
	}
	if !got.CompletedOn["2025-07-21"] {
		t.Fatalf("ledger entry lost in round trip")
	}
}
