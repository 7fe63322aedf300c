// Package checkout implements the checkout step machine: the ordered
// sequence of data-collection stages a shopper walks through before an order
// is submitted.
//
// The machine is linear with no skipping:
//
//	customer ──> shipping ──> payment ──> submitted
//	     <──────────  retreat  ──────────
//
// Advancing past a step requires that step's data to be present and
// structurally valid; failures are reported as field-keyed validation errors
// and leave the current step unchanged. Stepping backward never discards
// already-entered data. The submitted state is terminal and is only entered
// by the order submission flow after a successful placement.
package checkout
