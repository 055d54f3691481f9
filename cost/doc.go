// Package cost defines the Distance contract shared by the search packages
// of aocsearch.
//
// A Distance is any built-in integer or floating-point type, including named
// types such as
//
//	type Energy int
//
// It must be totally ordered, summable, and have a zero value meaning
// "no cost incurred yet". Infinity returns the largest representable value of
// the type and is used as the "unknown / unreachable" sentinel.
//
// Path costs are assumed non-negative. Add saturates at Infinity instead of
// wrapping around, so a long path never turns into a cheap one.
package cost
