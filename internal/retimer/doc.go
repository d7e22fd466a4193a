// Package retimer orchestrates the full retiming pipeline: build the
// comparison key, classify the revised words against the reference, and
// calibrate whatever timing is missing.
//
// The pure engine packages stay silent; this facade owns the collaborators
// (syllable estimator, romanizer, logger) and logs phase summaries at the
// edges.
package retimer
