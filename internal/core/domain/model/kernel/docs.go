// Package kernel contains shared value objects used across the commerce
// domain model: UUID identifiers and Money amounts.
//
// Value objects in this package are immutable, compared by value, and only
// constructible through factory functions that enforce their invariants.
// The zero value of UUID is invalid and detected by Validate; the zero value
// of Money is a valid zero amount, which keeps empty-cart totals well-defined
// without special cases.
package kernel
