package jobs

import (
	"context"
	"log/slog"
	"time"

	"localcrust/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalePaymentJob cancels orders whose payment has been pending longer than
// the configured window. Runs every minute to release reserved carts whose
// checkout was abandoned.
type StalePaymentJob struct {
	handler       commands.CancelStaleOrdersCommandHandler
	paymentWindow time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStalePaymentJob creates the stale-payment sweep job.
func NewStalePaymentJob(
	handler commands.CancelStaleOrdersCommandHandler,
	paymentWindow time.Duration,
	logger *slog.Logger,
) *StalePaymentJob {
	return &StalePaymentJob{
		handler:       handler,
		paymentWindow: paymentWindow,
		cron:          cron.New(),
		logger:        logger.With("component", "stale_payment_job"),
	}
}

// Start begins the stale-payment job to run every minute.
func (j *StalePaymentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.paymentWindow)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale payment job misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale payment job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale payment job started (running every minute)",
		"payment_window", j.paymentWindow)
	return nil
}

// Stop stops the stale-payment job.
func (j *StalePaymentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale payment job stopped")
}
