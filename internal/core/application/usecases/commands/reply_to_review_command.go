package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var (
	ErrReplyToReviewCommandIsNotConstructed = errors.New(
		"ReplyToReviewCommand must be created via NewReplyToReviewCommand constructor",
	)
	ErrReplyTextIsRequired = errors.New("reply text is required")
)

// ReplyToReviewCommand represents a baker answering a review of one of their
// products.
type ReplyToReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	bakerID  kernel.UUID
	text     string

	guard guard.ConstructorGuard
}

// NewReplyToReviewCommand creates a reply command for the acting baker.
func NewReplyToReviewCommand(reviewID, bakerID kernel.UUID, text string) (ReplyToReviewCommand, error) {
	cmd := ReplyToReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setBakerID(bakerID),
		cmd.setText(text),
	); err != nil {
		return ReplyToReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplyToReviewCommand) Validate() error {
	return c.guard.Validate(ErrReplyToReviewCommandIsNotConstructed)
}

// ReviewID returns the target review's identifier.
func (c ReplyToReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// BakerID returns the acting baker's identifier.
func (c ReplyToReviewCommand) BakerID() kernel.UUID {
	return c.bakerID
}

// Text returns the reply text.
func (c ReplyToReviewCommand) Text() string {
	return c.text
}

func (c *ReplyToReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}

func (c *ReplyToReviewCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}

func (c *ReplyToReviewCommand) setText(text string) error {
	if text == "" {
		return ErrReplyTextIsRequired
	}
	c.text = text
	return nil
}
