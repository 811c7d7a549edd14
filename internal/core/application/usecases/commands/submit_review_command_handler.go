package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"localcrust/internal/core/domain/model/review"
	"localcrust/internal/core/ports"
)

var (
	// ErrReviewNotEligible is returned when the order is not delivered or does
	// not contain the reviewed product.
	ErrReviewNotEligible = errors.New("order is not eligible for a review of this product")

	// ErrReviewAlreadyExists is returned when the product was already reviewed
	// from this order.
	ErrReviewAlreadyExists = errors.New("review already exists for this order and product")

	// ErrReviewSubmissionInFlight is returned when an identical submission is
	// already being processed.
	ErrReviewSubmissionInFlight = errors.New("review submission is already in flight")
)

// SubmitReviewCommandHandler publishes a customer's product review.
// Eligibility is derived from the order: it must belong to the customer, be
// delivered, and contain the product. A short-lived submission guard absorbs
// double-clicks before they reach the database.
type SubmitReviewCommandHandler struct {
	uowFactory      ReviewUoWFactory
	submissionGuard ports.ReviewSubmissionGuard
	publisher       ports.EventPublisher
	log             *slog.Logger
}

// NewSubmitReviewCommandHandler creates a handler for review submissions.
func NewSubmitReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	submissionGuard ports.ReviewSubmissionGuard,
	publisher ports.EventPublisher,
	log *slog.Logger,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory:      uowFactory,
		submissionGuard: submissionGuard,
		publisher:       publisher,
		log:             log,
	}
}

// Handle processes the review submission.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	acquired, err := h.submissionGuard.Acquire(ctx, cmd.CustomerID(), cmd.ProductID())
	if err != nil {
		return err
	}
	if !acquired {
		return ErrReviewSubmissionInFlight
	}

	committed := false
	defer func() {
		if !committed {
			if releaseErr := h.submissionGuard.Release(ctx, cmd.CustomerID(), cmd.ProductID()); releaseErr != nil {
				h.log.Warn("release review submission guard failed", "error", releaseErr)
			}
		}
	}()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sourceOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !sourceOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return fmt.Errorf("%w: order %s belongs to another customer", ErrNotAllowed, sourceOrder.Code())
	}
	if !sourceOrder.CanReview(cmd.ProductID()) {
		return ErrReviewNotEligible
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.Exists(ctx, cmd.OrderID(), cmd.ProductID())
	if err != nil {
		return err
	}
	if exists {
		return ErrReviewAlreadyExists
	}

	now := time.Now()
	newReview, err := review.NewReview(
		cmd.ReviewID(),
		cmd.ProductID(),
		cmd.CustomerID(),
		cmd.OrderID(),
		cmd.Rating(),
		cmd.Comment(),
		now,
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}
	committed = true

	event := ports.ReviewSubmittedEvent{
		ReviewID:    newReview.ID().String(),
		ProductID:   newReview.ProductID().String(),
		CustomerID:  newReview.CustomerID().String(),
		Rating:      newReview.Rating().Value(),
		SubmittedAt: now,
	}
	if err = h.publisher.PublishReviewSubmitted(ctx, event); err != nil {
		h.log.Warn("publish review submitted event failed",
			"review_id", newReview.ID().String(), "error", err)
	}

	return nil
}
