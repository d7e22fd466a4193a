// Package align classifies the words of a revised transcript against a
// time-stamped reference and synthesizes timestamps for the words that have
// none.
//
// Compare produces one Entry per revised word, plus placeholder entries for
// reference words the revision dropped. A dropped word's timing is held in a
// donor queue so a 1:1 replacement (delete A, insert B in the same region)
// inherits A's span outright instead of triggering calibration.
//
// Calibrate resolves the remaining uncalibrated runs by borrowing duration
// from their timed neighbors proportionally to syllable weight, then
// subdividing the borrowed window across the run. Borrowing rewrites the
// neighbors in the working copy, so runs are processed strictly left to
// right and later runs observe the shrunken spans. The caller's slice is
// never mutated.
package align
