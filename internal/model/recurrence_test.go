package model

import (
	"testing"
	"time"
)

func TestNewRecurrenceRejectsEmptySelection(t *testing.T) {
	if _, err := NewRecurrence(nil); err == nil {
		t.Fatalf("expected error for empty selection")
	}
	if _, err := NewRecurrence([]string{}); err == nil {
		t.Fatalf("expected error for empty selection")
	}
}

func TestNewRecurrenceRejectsUnknownDay(t *testing.T) {
	if _, err := NewRecurrence([]string{"Monday", "Funday"}); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestNewRecurrenceNormalizesFullWeek(t *testing.T) {
	rec, err := NewRecurrence([]string{
		"Sunday", "Saturday", "Friday", "Thursday", "Wednesday", "Tuesday", "Monday",
	})
	if err != nil {
		t.Fatalf("new recurrence: %v", err)
	}
	if len(rec) != 1 || rec[0] != AllDays {
		t.Fatalf("expected %v, got %v", Recurrence{AllDays}, rec)
	}
}

func TestNewRecurrenceDeduplicatesAndOrders(t *testing.T) {
	rec, err := NewRecurrence([]string{"Friday", "Monday", "Friday"})
	if err != nil {
		t.Fatalf("new recurrence: %v", err)
	}
	if len(rec) != 2 || rec[0] != "Monday" || rec[1] != "Friday" {
		t.Fatalf("expected [Monday Friday], got %v", rec)
	}
}

func TestAllDaysAppliesEveryWeekday(t *testing.T) {
	rec := Recurrence{AllDays}
	// 2025-07-21 is a Monday; walk a full week.
	day := time.Date(2025, time.July, 21, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if !rec.AppliesOn(day) {
			t.Fatalf("all-days recurrence should apply on %s", day.Weekday())
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestWeekdaySetAppliesOnlyOnMembers(t *testing.T) {
	rec := Recurrence{"Monday", "Wednesday"}
	monday := time.Date(2025, time.July, 21, 12, 0, 0, 0, time.UTC)
	if monday.Weekday() != time.Monday {
		t.Fatalf("fixture date is not a Monday")
	}
	if !rec.AppliesOn(monday) {
		t.Fatalf("expected recurrence to apply on Monday")
	}
	if rec.AppliesOn(monday.AddDate(0, 0, 1)) {
		t.Fatalf("expected recurrence not to apply on Tuesday")
	}
	if !rec.AppliesOn(monday.AddDate(0, 0, 2)) {
		t.Fatalf("expected recurrence to apply on Wednesday")
	}
}
