package housekeeping

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const fallbackSpec = "@daily"

// ScheduleStore is the part of the repository the janitor needs.
type ScheduleStore interface {
	DeleteProductionSchedulesEndedBefore(t time.Time) (int64, error)
}

// Janitor periodically drops production schedules whose window closed more
// than the retention period ago.
type Janitor struct {
	store     ScheduleStore
	spec      string
	retention time.Duration
	now       func() time.Time

	cron *cron.Cron
}

func NewJanitor(store ScheduleStore, spec string, retentionDays int) *Janitor {
	return &Janitor{
		store:     store,
		spec:      spec,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

// Start schedules the cleanup. An invalid spec falls back to @daily.
func (j *Janitor) Start() {
	c := cron.New()
	if _, err := c.AddFunc(j.spec, j.RunOnce); err != nil {
		slog.Warn("invalid cleanup schedule, falling back to daily", "spec", j.spec, "error", err)
		c = cron.New()
		_, _ = c.AddFunc(fallbackSpec, j.RunOnce)
	}
	c.Start()
	j.cron = c
}

// Stop waits for a running cleanup to finish.
func (j *Janitor) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}

func (j *Janitor) RunOnce() {
	if j.retention <= 0 {
		return
	}

	cutoff := j.now().Add(-j.retention)
	n, err := j.store.DeleteProductionSchedulesEndedBefore(cutoff)
	if err != nil {
		slog.Error("failed to clean up production schedules", "cutoff", cutoff, "error", err)
		return
	}
	if n > 0 {
		slog.Info("old production schedules removed", "count", n, "cutoff", cutoff)
	}
}
