// Package sample holds the small language-shape fixture: an additive
// function, a single-value holder, an interpolated greeting, and the
// even-filter-and-square transformation. RunEntry sequences the first two
// the way a direct script invocation would.
package sample
