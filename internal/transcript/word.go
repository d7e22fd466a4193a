package transcript

import (
	"fmt"

	"retime/internal/timecode"
)

// SyllableEstimator reports syllable counts for text tokens. Implementations
// must be deterministic for a given text and return non-negative counts.
type SyllableEstimator interface {
	Estimate(text string) int
}

// Word is an immutable time-stamped token. The syllable count is derived once
// at construction; "editing" a word means constructing a new one.
type Word struct {
	text      string
	span      timecode.Range
	syllables int
}

// NewWord builds a word with the syllable count supplied by est. Negative
// estimates clamp to zero.
func NewWord(est SyllableEstimator, text string, span timecode.Range) Word {
	count := est.Estimate(text)
	if count < 0 {
		count = 0
	}
	return Word{text: text, span: span, syllables: count}
}

// Text returns the word's text.
func (w Word) Text() string { return w.text }

// Span returns the word's time range.
func (w Word) Span() timecode.Range { return w.span }

// Syllables returns the syllable count fixed at construction.
func (w Word) Syllables() int { return w.syllables }

// Retimed returns a copy of the word with a new span. Text and syllable count
// are unchanged, so no estimator is needed.
func (w Word) Retimed(span timecode.Range) Word {
	return Word{text: w.text, span: span, syllables: w.syllables}
}

func (w Word) String() string {
	return fmt.Sprintf("%s @ %s", w.text, w.span)
}
