package baker

import (
	"fmt"

	"localcrust/internal/pkg/errs"
)

// VerificationStatus represents the admin moderation state of a baker account.
//
// State transitions:
//
//	VerificationPending ──┬──> VerificationVerified
//	                      └──> VerificationRejected
//
// Both outcomes are terminal; a rejected baker must register again.
type VerificationStatus int

const (
	// VerificationUnknown represents an invalid or undefined status.
	VerificationUnknown VerificationStatus = iota

	// VerificationPending is the initial status after registration.
	VerificationPending

	// VerificationVerified means an admin approved the baker.
	VerificationVerified

	// VerificationRejected means an admin rejected the baker.
	VerificationRejected
)

func verificationStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		VerificationUnknown:  "unknown",
		VerificationPending:  "pending",
		VerificationVerified: "verified",
		VerificationRejected: "rejected",
	}
}

// VerificationStatusFromString parses the wire representation of a verification status.
func VerificationStatusFromString(s string) (VerificationStatus, error) {
	for status, str := range verificationStrings() {
		if str == s && status != VerificationUnknown {
			return status, nil
		}
	}
	return VerificationUnknown, errs.NewValueIsInvalidErrorWithCause("verification status",
		fmt.Errorf("%q is not a valid verification status", s))
}

// Validate checks that the VerificationStatus is one of the defined states.
func (s VerificationStatus) Validate() error {
	if _, ok := verificationStrings()[s]; !ok || s == VerificationUnknown {
		return errs.NewValueIsInvalidErrorWithCause("verification status",
			fmt.Errorf("%d is not a valid verification status", s))
	}
	return nil
}

// String returns the wire representation of the verification status.
func (s VerificationStatus) String() string {
	if str, ok := verificationStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// decide performs the single pending -> outcome transition.
func (s VerificationStatus) decide(outcome VerificationStatus) (VerificationStatus, error) {
	if s != VerificationPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("verification status",
			fmt.Errorf("cannot move from %s to %s", s, outcome))
	}
	return outcome, nil
}
