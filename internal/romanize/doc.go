// Package romanize normalizes text toward Latin script before diffing.
//
// The Romanizer is an explicit collaborator owned by its constructing caller;
// nothing here is process-global. Latin text is folded (width forms
// normalized, combining marks stripped). Japanese text, when enabled, is read
// through the kagome morphological tokenizer and its katakana readings are
// transliterated to Hepburn romaji. Romanize never fails: unknown scripts
// pass through folded.
package romanize
