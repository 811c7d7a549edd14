package commands

import (
	"context"
	"log/slog"
	"time"
)

// CancelStaleOrdersCommandHandler cancels orders that never received their
// payment. Run periodically; see the jobs package.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	log        *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-payment
// sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	log *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle marks every stale pending order's payment as failed, which cancels
// the order. An order that cannot be cancelled anymore is logged and skipped
// rather than failing the whole sweep. Returns how many orders were swept.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().Add(-cmd.PaymentWindow())
	stale, err := orderRepo.GetStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, o := range stale {
		if err = o.MarkPaymentFailed(); err != nil {
			h.log.Warn("skipping order that can no longer be cancelled",
				"order_code", o.Code(), "error", err)
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		swept++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return swept, nil
}
