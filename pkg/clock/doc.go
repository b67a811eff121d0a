// Package clock provides a tiny time abstraction.
//
// Code that depends on the current date (age checks, expirations) should
// take a Clock instead of calling time.Now directly, so tests can pin "now"
// with Fixed and stay deterministic.
package clock
