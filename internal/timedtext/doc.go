// Package timedtext reads and writes word sequences as subtitle and lyric
// documents.
//
// SRT files carry cue-level timing only, so word spans are synthesized per
// cue by syllable-weighted distribution on parse. Enhanced LRC carries word
// tags directly and is the natural output format for word timing. Plain
// text parses to words with zero spans, the shape a revised sequence needs
// before retiming.
package timedtext
