// Package builder runs a single robot build: it rolls a seven-sided die,
// adds the rolled part when the dependency rules allow it, and stops once the
// robot matches its target quantities.
//
// A build is a small state machine:
//
//	InProgress --(robot complete)--------> Completed
//	InProgress --(rolls > safety limit)--> AbortedSafety
//
// Rolls that cannot be used yet are wasted and the loop simply rolls again.
// Reaching AbortedSafety means the rules cannot finish the robot; Build
// reports it as ErrSafetyLimit and callers treat it as fatal.
package builder
