// Package assert reports broken timing invariants in debug builds.
//
// Builds without the debug tag compile That to a no-op, so timing reads keep
// their no-panic, no-error contract in production.
package assert
