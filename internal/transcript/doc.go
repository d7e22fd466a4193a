// Package transcript models time-stamped words and weighted duration
// distribution.
//
// Word is an immutable (text, span) pair whose syllable count is fixed at
// construction through an injected SyllableEstimator; no global estimator
// state exists anywhere. Distribute lays a weighted item sequence out
// contiguously across a time window with cursor-accumulated boundaries so
// rounding never drifts across the sequence.
package transcript
