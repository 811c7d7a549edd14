package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrModerateBakerCommandIsNotConstructed = errors.New(
	"ModerateBakerCommand must be created via NewModerateBakerCommand constructor",
)

// ModerateBakerCommand represents an admin's verification decision on a
// pending baker.
type ModerateBakerCommand struct { //nolint:recvcheck //using for validation
	bakerID kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

// NewModerateBakerCommand creates a moderation command. approve true verifies
// the baker, false rejects it.
func NewModerateBakerCommand(bakerID kernel.UUID, approve bool) (ModerateBakerCommand, error) {
	if err := bakerID.Validate(); err != nil {
		return ModerateBakerCommand{}, err
	}

	return ModerateBakerCommand{
		bakerID: bakerID,
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ModerateBakerCommand) Validate() error {
	return c.guard.Validate(ErrModerateBakerCommandIsNotConstructed)
}

// BakerID returns the target baker's identifier.
func (c ModerateBakerCommand) BakerID() kernel.UUID {
	return c.bakerID
}

// Approve reports whether the decision is an approval.
func (c ModerateBakerCommand) Approve() bool {
	return c.approve
}
