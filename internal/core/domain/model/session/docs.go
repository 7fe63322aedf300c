// Package session holds the shopper session aggregate: the cart, the
// checkout step machine once one was begun, and the single-submission guard
// that keeps one submission in flight per session.
package session
