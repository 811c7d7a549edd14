package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/review"
	"localcrust/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a customer reviewing a product they received
// in a delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	customerID kernel.UUID
	orderID    kernel.UUID
	productID  kernel.UUID
	rating     review.Rating
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a review submission command. The comment may
// be empty.
func NewSubmitReviewCommand(
	reviewID kernel.UUID,
	customerID kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	rating review.Rating,
	comment string,
) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier the new review will get.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// CustomerID returns the reviewing customer's identifier.
func (c SubmitReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the delivered order the review is based on.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the reviewed product's identifier.
func (c SubmitReviewCommand) ProductID() kernel.UUID {
	return c.productID
}

// Rating returns the star rating.
func (c SubmitReviewCommand) Rating() review.Rating {
	return c.rating
}

// Comment returns the free-text comment, possibly empty.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitReviewCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating review.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	c.rating = rating
	return nil
}
