package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/config"
	"roombook/internal/usecase/shared"
)

// Dispatcher drains the notification_jobs outbox. Jobs are claimed with
// row locks inside the polling transaction, so several instances can run
// side by side.
type Dispatcher struct {
	uow         shared.UnitOfWork
	mailer      Mailer
	clock       clock.Clock
	interval    time.Duration
	batchSize   int
	maxAttempts int

	stop chan struct{}
	done chan struct{}
}

func NewDispatcher(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock, cfg config.WorkerConfig) *Dispatcher {
	return &Dispatcher{
		uow:         uow,
		mailer:      mailer,
		clock:       clk,
		interval:    cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	close(d.stop)
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), d.interval)
			if err := d.Drain(ctx); err != nil {
				slog.Error("notification dispatch cycle failed", "error", err.Error())
			}
			cancel()
		}
	}
}

// Drain processes one batch of due jobs. Exported so tests and one-shot
// invocations can run a cycle without the ticker.
func (d *Dispatcher) Drain(ctx context.Context) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Notifications().ClaimPendingJobs(ctx, tx.DB(), d.clock.Now(), d.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := d.deliver(ctx, job); err != nil {
				terminal := job.Attempts+1 >= d.maxAttempts
				slog.Warn("notification job delivery failed",
					"job_id", job.ID,
					"attempt", job.Attempts+1,
					"terminal", terminal,
					"error", err.Error())
				if err := tx.Notifications().MarkJobFailed(ctx, tx.DB(), job.ID, err.Error(), terminal); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkJobSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	switch job.Kind {
	case "email":
		var email Email
		if err := json.Unmarshal(job.Payload, &email); err != nil {
			return fmt.Errorf("malformed email payload: %w", err)
		}
		return d.mailer.Send(ctx, email)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}
