package transcript

import "retime/internal/timecode"

// Pauses returns the gaps of positive duration between consecutive words, in
// sequence order.
func Pauses(words []Word) []timecode.Range {
	var pauses []timecode.Range
	for i := 1; i < len(words); i++ {
		gap := timecode.Range{Start: words[i-1].span.End, End: words[i].span.Start}
		if gap.Duration() > 0 {
			pauses = append(pauses, gap)
		}
	}
	return pauses
}
