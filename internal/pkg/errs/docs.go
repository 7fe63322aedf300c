// Package errs provides standardized error types for the commerce core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Value errors raised by domain constructors and repositories:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError.
//   - Lifecycle errors defined by the cart-to-order flow:
//     ValidationError (field-scoped, recoverable), InvalidTransitionError
//     (status change outside the transition table, never retried),
//     ErrSubmissionConflict (second submit while one is in flight),
//     RemoteFailureError (collaborator call failed, prior state preserved).
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValidation)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// No error is silently swallowed: every failure path in the core leaves the
// cart, checkout, and order state machines in a well-defined, previously
// valid state and reports one of these kinds.
package errs
