package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"kidtasks/internal/auth"
	"kidtasks/internal/config"
	"kidtasks/internal/logger"
	"kidtasks/internal/repository"
	"kidtasks/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	store := repository.NewFileStore(cfg.DataFile, log)
	doc := store.Load()

	creds := auth.NewCredentialStore(doc)
	tracker := service.NewTracker(doc, store, creds, log)
	summary := service.NewSummaryService(tracker)

	scheduler := service.NewScheduler(time.Local)

	// Clock tick. The displayed clock is presentation, but the cadence
	// lives here so the UI layer stays timer-free.
	if _, err := scheduler.ScheduleInterval(time.Second, func() {
		log.WithField("clock", time.Now().Format("03:04:05 PM Monday, January-02-2006")).Debug("tick")
	}); err != nil {
		log.Fatalf("schedule clock: %v", err)
	}

	// Status refresh: re-evaluate every visible task for the resumed
	// session and report transitions. States move todo -> active ->
	// overdue on their own as the clock advances; done only via the
	// completion toggle.
	lastSeen := map[string]service.Status{}
	if _, err := scheduler.ScheduleInterval(cfg.RefreshInterval, func() {
		session, ok := tracker.Resume()
		if !ok {
			return
		}
		now := time.Now()
		children, err := tracker.Children(session)
		if err != nil {
			log.WithError(err).Warn("refresh children")
			return
		}
		for _, child := range children {
			statuses, err := tracker.ListTasksFor(session, child.ID, now)
			if err != nil {
				log.WithError(err).WithField("child", child.Name).Warn("refresh tasks")
				continue
			}
			for _, ts := range statuses {
				if prev, seen := lastSeen[ts.Task.ID]; seen && prev == ts.Status {
					continue
				}
				lastSeen[ts.Task.ID] = ts.Status
				log.WithFields(logrus.Fields{
					"child":      child.Name,
					"task":       ts.Task.Text,
					"status":     string(ts.Status),
					"emphasized": ts.Status.Emphasized(),
				}).Info("task status")
			}
		}
	}); err != nil {
		log.Fatalf("schedule refresh: %v", err)
	}

	// Midnight rollover: yesterday's ledger entries stop applying, so
	// print a fresh daily report.
	if _, err := scheduler.ScheduleDaily("00:00", func() {
		session, ok := tracker.Resume()
		if !ok {
			return
		}
		report, err := summary.DailySummary(session, time.Now())
		if err != nil {
			log.WithError(err).Warn("daily report")
			return
		}
		for _, line := range strings.Split(report, "\n") {
			log.Info(line)
		}
	}); err != nil {
		log.Fatalf("schedule rollover: %v", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	log.WithFields(logrus.Fields{
		"data_file": cfg.DataFile,
		"theme":     tracker.Theme(),
	}).Info("kid tasks tracker started")

	<-ctx.Done()
	log.Info("shutdown complete")
}
