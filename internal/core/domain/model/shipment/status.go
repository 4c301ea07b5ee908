package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Pending ──> Shipped ──> Delivered
//	   │           │
//	   └───────────┴──────> Failed
//
// Delivered and Failed are terminal. Re-applying the current status is not a
// transition; the aggregate treats it as a silent no-op.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending is the initial status of every shipment.
	Pending

	// Shipped indicates the parcel has left the origin.
	Shipped

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Failed indicates the shipment cannot proceed. Terminal, reachable from
	// any non-terminal state.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Failed:        "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded
	return map[Status]string{
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Failed:    "FAILED",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation, e.g. "PENDING".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo validates a transition from s to target. Re-applying the
// current status is rejected here; the aggregate short-circuits that case
// before consulting the state machine.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	allowed := map[Status][]Status{
		Pending: {Shipped, Failed},
		Shipped: {Delivered, Failed},
	}

	for _, next := range allowed[s] {
		if next == target {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("cannot transition from %s to %s", s, target))
}
