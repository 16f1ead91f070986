// Package jobs provides scheduled background tasks for the restaurant.
//
// The only job today is KitchenLoadJob, a read-only snapshot of how many
// tables are queued for or being worked by the kitchen. It is built on
// github.com/robfig/cron/v3 and never mutates state.
package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// KitchenLoadJob periodically logs the kitchen backlog: the number of tables
// waiting for the kitchen and the number currently in preparation.
type KitchenLoadJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewKitchenLoadJob creates the kitchen load snapshot job.
func NewKitchenLoadJob(db *gorm.DB, logger *slog.Logger) *KitchenLoadJob {
	return &KitchenLoadJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "kitchen_load_job"),
	}
}

// Start begins the snapshot job, running every thirty seconds.
func (j *KitchenLoadJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		waiting, preparing, err := j.countKitchenLoad(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen load snapshot failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Kitchen load",
			"waitingKitchen", waiting,
			"preparing", preparing,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen load job started (running every thirty seconds)")
	return nil
}

// Stop stops the snapshot job.
func (j *KitchenLoadJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen load job stopped")
}

func (j *KitchenLoadJob) countKitchenLoad(ctx context.Context) (waiting int64, preparing int64, err error) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM restaurant_tables
		WHERE status IN ('WAITING_KITCHEN', 'PREPARING')
		GROUP BY status
	`).Rows()
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return 0, 0, err
		}
		switch status {
		case "WAITING_KITCHEN":
			waiting = count
		case "PREPARING":
			preparing = count
		}
	}

	return waiting, preparing, rows.Err()
}
