// Package order implements the placed-order aggregate and its lifecycle
// state machine.
//
// An order is created in the pending status by a successful submission and
// then only ever mutated through validated status transitions:
//
//	pending ──> processing ──> shipped ──> delivered ──> returned
//	   │             │                          (terminal)
//	   └──> cancelled <──┘
//	        (terminal)
//
// Cancellation and return require a non-empty reason. Any transition outside
// the table fails with an InvalidTransitionError and leaves the order
// untouched. Orders are never deleted, only terminally settled.
//
// The package also defines the immutable SubmissionPayload assembled from a
// validated checkout and a non-empty cart, and the two-phase StatusChange
// used for optimistic local updates with rollback on remote failure.
package order
