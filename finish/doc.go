// Package finish implements the Finish Solver (spec §4.D): a reachability
// query answering "can this state still reach Completed at all, ignoring
// Quality entirely?" The macro solver uses it as a hard pruner — a branch
// that cannot finish is worthless regardless of the Quality Upper-Bound
// solver's estimate — and, once a state can finish, to splice in a
// canonical finishing action sequence instead of searching the remaining
// turns directly.
//
// The reduced State key drops every field that cannot affect whether
// Progress can still reach its target: Quality, Inner Quiet, Innovation and
// Great Strides are projected away, following the compressed-state DP style
// lvlath's dtw package uses to keep a warping-path table small.
package finish
