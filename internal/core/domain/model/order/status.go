package order

import (
	"fmt"
	"strings"

	"neushop/internal/pkg/errs"
)

// Status represents the lifecycle state of a placed order. It implements a
// state machine with a closed transition table so orders follow the correct
// business workflow.
//
// State transitions:
//
//	pending ──> processing ──> shipped ──> delivered ──> returned
//	   │             │
//	   └─────────────┴──> cancelled
//
// cancelled and returned are terminal. Status values are stored and
// transitioned canonically lower-case; parsing is case-insensitive for
// presentation boundaries.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is placed.
	Pending

	// Processing indicates staff accepted the order and began fulfilment.
	Processing

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered indicates the order reached the shopper. A delivered order
	// may still settle to returned.
	Delivered

	// Cancelled is a terminal status reachable from pending or processing.
	// Cancellation requires a reason.
	Cancelled

	// Returned is a terminal status reachable only from delivered.
	// Returns require a reason.
	Returned
)

// getStatusStrings returns a map of Status values to their canonical
// lower-case string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
		Returned:   "returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
		Returned:   "returned",
	}
}

// transitionTable returns the directed legal-transition table: source status
// to the set of allowed destinations. Terminal statuses map to an empty set.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {Returned},
		Cancelled:  {},
		Returned:   {},
	}
}

// StatusFromString parses a status name case-insensitively.
// Returns an error for names outside the six-member enumeration.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the six valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical lower-case name of the status. Implements
// fmt.Stringer and is safe to call on any Status value, including invalid
// ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	destinations, ok := transitionTable()[s]
	return ok && len(destinations) == 0
}

// RequiresReason reports whether transitioning into this status requires a
// non-empty reason. Cancellation and return are shopper-visible settlements
// and must always carry one.
func (s Status) RequiresReason() bool {
	return s == Cancelled || s == Returned
}

// CanTransitionTo is the legal-transition predicate: it reports whether the
// table allows moving from this status to target. Used by both the
// shopper-facing cancel/return actions and staff-facing status updates.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the table and returns the new
// status. A transition outside the table fails with an
// InvalidTransitionError and no state change.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
