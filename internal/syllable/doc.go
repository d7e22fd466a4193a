// Package syllable estimates how many spoken syllables a text token carries.
//
// The estimator is a vowel-run heuristic for Latin-script text: count vowel
// groups, subtract silent endings, add back known exception patterns, and
// floor at one for any token that contains a letter. Tokens without letters
// (punctuation, digits, empty text) estimate zero so they carry no weight in
// duration splits. Estimates are deterministic, which makes the memoizing
// wrapper sound.
package syllable
