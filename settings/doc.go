// Package settings defines the immutable Settings record that configures a
// solve (spec §3, §6) and a functional-option builder for constructing one,
// in the same style as lvlath's builder and dijkstra packages: options
// validate and panic on programmer error, New validates the assembled
// record and returns a sentinel error for anything a caller could
// legitimately get wrong at runtime.
//
// Settings is read-only once built; every solver component that uses it
// (craft, finish, qualityub, macro) treats it as a value to be passed around, never
// mutated, matching spec §3 ("Settings ... are created once per solve ...
// read-only during macro search").
package settings
