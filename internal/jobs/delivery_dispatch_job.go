package jobs

import (
	"context"
	"log/slog"

	"ordersvc/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDispatchJob starts pending deliveries whose scheduled date has
// arrived. Runs every minute.
type DeliveryDispatchJob struct {
	handler commands.DispatchDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryDispatchJob creates a new job for dispatching due deliveries.
// Uses DispatchDeliveriesCommandHandler to move them from pending to in transit.
func NewDeliveryDispatchJob(handler commands.DispatchDeliveriesCommandHandler, logger *slog.Logger) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the delivery dispatch job to run at the top of every minute.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchDeliveriesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery dispatch command construction failed", "error", cmdErr)
			return
		}

		dispatched, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", handleErr)
			return
		}

		if dispatched > 0 {
			j.logger.InfoContext(ctx, "Deliveries dispatched", "count", dispatched)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started (running every minute)")
	return nil
}

// Stop stops the delivery dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}
