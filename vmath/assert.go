package vmath

import "fmt"

// Assert panics with msg when cond is false in builds tagged debug
// Caller-contract checks (zero divisors, negative deltas) go through here so release builds pay nothing
func Assert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("vmath: assertion failed: %s", msg))
	}
}
