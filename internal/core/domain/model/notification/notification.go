package notification

import (
	"errors"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance was
// not created through the NewNotification or RestoreNotification constructors.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Kind classifies what a notification is about.
type Kind int

const (
	KindUnknown Kind = iota

	// KindOrderStatus is sent to the customer when their order changes status.
	KindOrderStatus

	// KindReviewReply is sent to the customer when a baker answers their review.
	KindReviewReply

	// KindNewOrder is sent to the baker when a paid order contains their products.
	KindNewOrder

	// KindVerification is sent to the baker when an admin decides their application.
	KindVerification
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:      "unknown",
		KindOrderStatus:  "order_status",
		KindReviewReply:  "review_reply",
		KindNewOrder:     "new_order",
		KindVerification: "verification",
	}
}

// KindFromString parses the wire representation of a notification kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range kindStrings() {
		if str == s && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("notification kind",
		fmt.Errorf("%q is not a valid notification kind", s))
}

// Validate checks that the Kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := kindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("notification kind",
			fmt.Errorf("%d is not a valid notification kind", k))
	}
	return nil
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	if str, ok := kindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Notification is an in-app message for one recipient. ReferenceID points at
// the order or review the message is about, so clients can deep-link.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	kind        Kind
	message     string
	referenceID kernel.UUID
	read        bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Kind,
	message string,
	referenceID kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientID(recipientID),
		n.setKind(kind),
		n.setMessage(message),
		n.setReferenceID(referenceID),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Kind,
	message string,
	referenceID kernel.UUID,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, kind, message, referenceID, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the identifier of the customer or baker addressed.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Kind returns what the notification is about.
func (n *Notification) Kind() Kind {
	return n.kind
}

// Message returns the display text.
func (n *Notification) Message() string {
	return n.message
}

// ReferenceID returns the order or review the message is about.
func (n *Notification) ReferenceID() kernel.UUID {
	return n.referenceID
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns the delivery timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead marks the notification as seen. Marking twice is harmless.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	n.recipientID = recipientID
	return nil
}

func (n *Notification) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setReferenceID(referenceID kernel.UUID) error {
	if err := referenceID.Validate(); err != nil {
		return err
	}
	n.referenceID = referenceID
	return nil
}

func (n *Notification) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	n.createdAt = createdAt
	return nil
}
