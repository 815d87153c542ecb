package service

import (
	"fmt"
	"strings"
	"time"
)

// SummaryService builds human-readable daily reports from computed
// task states. It holds no state of its own; everything is derived
// per call.
type SummaryService struct {
	tracker *Tracker
}

func NewSummaryService(tracker *Tracker) *SummaryService {
	return &SummaryService{tracker: tracker}
}

// DailySummary renders the session user's dashboard as plain text:
// one section per child, split into pending and completed. Tasks with
// no instance today are omitted.
func (s *SummaryService) DailySummary(session Session, now time.Time) (string, error) {
	children, err := s.tracker.Children(session)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Daily report %s\n", now.Format("2006-01-02")))

	for _, child := range children {
		statuses, err := s.tracker.ListTasksFor(session, child.ID, now)
		if err != nil {
			return "", err
		}

		var pending, completed []TaskStatus
		for _, ts := range statuses {
			if ts.Status == StatusDone {
				completed = append(completed, ts)
			} else {
				pending = append(pending, ts)
			}
		}

		builder.WriteString(fmt.Sprintf("\n%s\n", child.Name))
		builder.WriteString("To-Do\n")
		if len(pending) == 0 {
			builder.WriteString("  (nothing pending)\n")
		}
		for _, ts := range pending {
			builder.WriteString(formatTaskLine(ts))
		}
		builder.WriteString("Completed!\n")
		if len(completed) == 0 {
			builder.WriteString("  (nothing yet)\n")
		}
		for _, ts := range completed {
			builder.WriteString(formatTaskLine(ts))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatTaskLine(ts TaskStatus) string {
	line := fmt.Sprintf("  - %s (%s-%s) [%s]",
		ts.Task.Text, ts.Task.StartTime, ts.Task.EndTime, ts.Status)
	if ts.Status.Emphasized() {
		line += " due now"
	}
	return line + "\n"
}
