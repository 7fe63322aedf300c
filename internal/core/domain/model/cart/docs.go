// Package cart implements the shopper's cart aggregate: an ordered list of
// line items plus a derived total.
//
// The aggregate maintains these invariants:
//
//   - Line identity is the (product ID, variant) pair; adding an item that
//     matches an existing line merges quantities instead of appending.
//   - Quantities are always at least 1; setting a quantity to zero or below
//     removes the line entirely.
//   - The total always equals the sum of unit price times quantity over all
//     lines, is recomputed on every mutation, and is never negative. An
//     empty cart has a zero total.
//
// Mutations are synchronous and local; any remote mirroring of cart contents
// is a best-effort background concern that never blocks or fails a mutation.
package cart
