package review

import (
	"errors"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not created
	// through the NewReview or RestoreReview constructors.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

	// ErrReviewAlreadyReplied is returned when a baker tries to reply to a review
	// that already carries a reply.
	ErrReviewAlreadyReplied = errors.New("review already has a reply")
)

// Reply is the baker's single answer to a review.
type Reply struct {
	bakerID   kernel.UUID
	text      string
	createdAt time.Time
}

// BakerID returns the identifier of the baker who replied.
func (r Reply) BakerID() kernel.UUID {
	return r.bakerID
}

// Text returns the reply text.
func (r Reply) Text() string {
	return r.text
}

// CreatedAt returns the reply timestamp.
func (r Reply) CreatedAt() time.Time {
	return r.createdAt
}

// Review is the aggregate root for a customer's product review. A review is
// tied to the delivered order that makes the customer eligible to write it,
// and can carry at most one baker reply.
type Review struct {
	id         kernel.UUID
	productID  kernel.UUID
	customerID kernel.UUID
	orderID    kernel.UUID
	rating     Rating
	comment    string
	reply      *Reply
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a review for a product received in a delivered order.
// The comment may be empty; the rating is mandatory.
func NewReview(
	id kernel.UUID,
	productID kernel.UUID,
	customerID kernel.UUID,
	orderID kernel.UUID,
	rating Rating,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r := &Review{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProductID(productID),
		r.setCustomerID(customerID),
		r.setOrderID(orderID),
		r.setRating(rating),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistent storage, including an
// existing baker reply when one was stored.
func RestoreReview(
	id kernel.UUID,
	productID kernel.UUID,
	customerID kernel.UUID,
	orderID kernel.UUID,
	rating Rating,
	comment string,
	reply *Reply,
	createdAt time.Time,
) (*Review, error) {
	r, err := NewReview(id, productID, customerID, orderID, rating, comment, createdAt)
	if err != nil {
		return nil, err
	}
	r.reply = reply
	return r, nil
}

// RestoreReply rebuilds a stored reply value for RestoreReview.
func RestoreReply(bakerID kernel.UUID, text string, createdAt time.Time) (*Reply, error) {
	if err := bakerID.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errs.NewValueIsRequiredError("reply text")
	}
	return &Reply{bakerID: bakerID, text: text, createdAt: createdAt}, nil
}

// Validate ensures the Review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ProductID returns the reviewed product's identifier.
func (r *Review) ProductID() kernel.UUID {
	return r.productID
}

// CustomerID returns the reviewing customer's identifier.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// OrderID returns the delivered order that made the review eligible.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// Rating returns the star rating.
func (r *Review) Rating() Rating {
	return r.rating
}

// Comment returns the free-text comment, possibly empty.
func (r *Review) Comment() string {
	return r.comment
}

// Reply returns the baker reply, or nil if none exists.
func (r *Review) Reply() *Reply {
	return r.reply
}

// HasReply reports whether the review already carries a baker reply.
func (r *Review) HasReply() bool {
	return r.reply != nil
}

// CreatedAt returns the review timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// AddReply attaches the baker's single reply to the review.
//
// Business rules:
//   - A review carries at most one reply
//   - The reply text is required
func (r *Review) AddReply(bakerID kernel.UUID, text string, at time.Time) error {
	if r.reply != nil {
		return ErrReviewAlreadyReplied
	}

	reply, err := RestoreReply(bakerID, text, at)
	if err != nil {
		return err
	}

	r.reply = reply
	return nil
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *Review) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setRating(rating Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	r.rating = rating
	return nil
}

func (r *Review) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	r.createdAt = createdAt
	return nil
}
