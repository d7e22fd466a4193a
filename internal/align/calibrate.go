package align

import (
	"math"
	"slices"

	"retime/internal/timecode"
)

// CalibrateOptions tunes how much room a run of uncalibrated words demands
// before borrowing from its neighbors.
type CalibrateOptions struct {
	// MinSpace is the smallest acceptable window for any run, in
	// milliseconds.
	MinSpace int64
	// SpacePerSyllable is the window demanded per syllable, in milliseconds.
	SpacePerSyllable int64
}

// DefaultCalibrateOptions returns the standard thresholds: 100ms minimum and
// 100ms per syllable.
func DefaultCalibrateOptions() CalibrateOptions {
	return CalibrateOptions{MinSpace: 100, SpacePerSyllable: 100}
}

// Calibrate resolves every uncalibrated entry to a real span and returns the
// resulting sequence. The input slice is never mutated; all work happens on a
// private copy.
//
// Runs of uncalibrated entries are processed left to right. Each run measures
// the gap between its nearest timed neighbors (removed placeholders are
// skipped), and when the gap falls short of the syllable-weighted threshold,
// duration is borrowed from the neighbors: their spans shrink in the working
// copy, so later runs see the updated timing. The run's words then subdivide
// the window proportionally to syllable count with cursor-accumulated
// boundaries and come out OpAdded.
func Calibrate(entries []Entry, opts CalibrateOptions) []Entry {
	work := slices.Clone(entries)

	for _, phrase := range uncalibratedPhrases(work) {
		left, right := neighborIndices(work, phrase[0], phrase[len(phrase)-1])

		var space int64
		if left >= 0 && right >= 0 {
			space = work[left].Word.Span().Distance(work[right].Word.Span())
		}

		syllables := 0
		for _, pos := range phrase {
			syllables += work[pos].Word.Syllables()
		}
		threshold := max(opts.MinSpace, int64(syllables)*opts.SpacePerSyllable)

		var start timecode.Timestamp
		if space < threshold {
			var end timecode.Timestamp
			start, end = borrowSpace(work, space, syllables, left, right)
			space = int64(end - start)
		} else if left >= 0 {
			start = work[left].Word.Span().End
		}

		subdivide(work, phrase, syllables, start, space)
	}

	return work
}

// uncalibratedPhrases returns the positions of each maximal contiguous run
// of uncalibrated entries, in sequence order.
func uncalibratedPhrases(entries []Entry) [][]int {
	var phrases [][]int
	var current []int
	for i, entry := range entries {
		if entry.Op == OpUncalibrated {
			current = append(current, i)
		} else if len(current) > 0 {
			phrases = append(phrases, current)
			current = nil
		}
	}
	if len(current) > 0 {
		phrases = append(phrases, current)
	}
	return phrases
}

// neighborIndices finds the nearest entries on either side of [first, last]
// that carry meaningful timing. Removed placeholders are skipped. Either
// index is -1 when no such neighbor exists.
func neighborIndices(entries []Entry, first, last int) (int, int) {
	left, right := -1, -1
	for i := first - 1; i >= 0; i-- {
		if entries[i].Op != OpRemoved {
			left = i
			break
		}
	}
	for i := last + 1; i < len(entries); i++ {
		if entries[i].Op != OpRemoved {
			right = i
			break
		}
	}
	return left, right
}

// subdivide lays the run's words out across [start, start+space) weighted by
// syllable count, with boundaries computed from cumulative weight so rounding
// never drifts. Zero-syllable words get zero-duration slices; a run with no
// syllables at all splits the window evenly. Every resolved entry keeps its
// revised-sequence index and becomes OpAdded.
func subdivide(entries []Entry, phrase []int, syllables int, start timecode.Timestamp, space int64) {
	if space < 0 {
		space = 0
	}

	weightOf := func(pos int) float64 { return float64(entries[pos].Word.Syllables()) }
	total := float64(syllables)
	if total == 0 {
		weightOf = func(int) float64 { return 1 }
		total = float64(len(phrase))
	}

	cursor := start
	var cumulative float64
	for _, pos := range phrase {
		cumulative += weightOf(pos)
		end := start + timecode.Timestamp(math.Round(float64(space)*cumulative/total))
		entries[pos] = Entry{
			Index: entries[pos].Index,
			Word:  entries[pos].Word.Retimed(timecode.Range{Start: cursor, End: end}),
			Op:    OpAdded,
		}
		cursor = end
	}
}
