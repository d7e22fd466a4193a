package timedtext

import (
	"strings"

	"retime/internal/timecode"
	"retime/internal/transcript"
)

// Line is one display unit: a span, the timed words inside it, and the
// display text (which may carry punctuation and casing the word split
// dropped).
type Line struct {
	Span  timecode.Range
	Words []transcript.Word
	Text  string
}

// Words flattens lines into the single word sequence the engine consumes.
func Words(lines []Line) []transcript.Word {
	var words []transcript.Word
	for _, line := range lines {
		words = append(words, line.Words...)
	}
	return words
}

// Regroup splits a word sequence into display lines wherever the pause
// between consecutive words reaches gap milliseconds. Every line spans its
// first word's start to its last word's end.
func Regroup(words []transcript.Word, gap int64) []Line {
	var lines []Line
	var current []transcript.Word
	flush := func() {
		if len(current) == 0 {
			return
		}
		lines = append(lines, makeLine(current))
		current = nil
	}

	for i, w := range words {
		if i > 0 {
			pause := int64(w.Span().Start - words[i-1].Span().End)
			if pause >= gap {
				flush()
			}
		}
		current = append(current, w)
	}
	flush()
	return lines
}

func makeLine(words []transcript.Word) Line {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text()
	}
	return Line{
		Span: timecode.Range{
			Start: words[0].Span().Start,
			End:   words[len(words)-1].Span().End,
		},
		Words: words,
		Text:  strings.Join(texts, " "),
	}
}
