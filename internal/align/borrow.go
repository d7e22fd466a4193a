package align

import (
	"math"

	"retime/internal/timecode"
)

// borrowSpace carves a window for a run of syllables words out of its
// neighbors' durations and returns the window's [start, end). The shrunken
// neighbor entries are written back into work so later runs observe them.
// space is the gap that already exists between the neighbors; the borrowed
// window absorbs it. With no neighbors at all the window collapses to zero
// width at the sequence origin.
func borrowSpace(work []Entry, space int64, syllables int, left, right int) (timecode.Timestamp, timecode.Timestamp) {
	switch {
	case left >= 0 && right >= 0:
		return borrowBoth(work, space, syllables, left, right)
	case left >= 0:
		return borrowLeft(work, space, syllables, left)
	case right >= 0:
		return borrowRight(work, space, syllables, right)
	default:
		return 0, 0
	}
}

// borrowBoth splits the combined neighbor duration three ways by syllable
// weight. The run's share comes out of the middle: the left neighbor keeps
// its head, the right keeps its tail, and whatever duration the run does not
// claim flows back to the neighbors proportional to both their syllable
// weight and their share of the pool.
func borrowBoth(work []Entry, space int64, syllables, left, right int) (timecode.Timestamp, timecode.Timestamp) {
	lw, rw := work[left].Word, work[right].Word

	total := lw.Syllables() + rw.Syllables() + syllables
	dl, dr := lw.Span().Duration(), rw.Span().Duration()
	pool := dl + dr
	if total == 0 || pool <= 0 {
		// Nothing to split; leave the neighbors alone and hand back the
		// existing gap.
		return lw.Span().End, rw.Span().Start
	}

	runDuration := max(0, roundMs(float64(pool)*float64(syllables)/float64(total))-space)
	returned := pool - runDuration

	lShare := float64(lw.Syllables()) / float64(total) * (float64(dl) / float64(pool))
	rShare := float64(rw.Syllables()) / float64(total) * (float64(dr) / float64(pool))
	shareTotal := lShare + rShare
	if shareTotal == 0 {
		// Both neighbors syllable-free: split by duration instead.
		lShare = float64(dl) / float64(pool)
		rShare = float64(dr) / float64(pool)
		shareTotal = lShare + rShare
	}
	lShare /= shareTotal
	rShare /= shareTotal

	lKept := min(dl, roundMs(float64(returned)*lShare))
	rKept := min(dr, roundMs(float64(returned)*rShare))

	newLeftEnd := lw.Span().Start + timecode.Timestamp(lKept)
	newRightStart := rw.Span().End - timecode.Timestamp(rKept)
	work[left].Word = lw.Retimed(timecode.Range{Start: lw.Span().Start, End: newLeftEnd})
	work[right].Word = rw.Retimed(timecode.Range{Start: newRightStart, End: rw.Span().End})

	return newLeftEnd, newRightStart
}

func borrowLeft(work []Entry, space int64, syllables, left int) (timecode.Timestamp, timecode.Timestamp) {
	lw := work[left].Word
	end := lw.Span().End + timecode.Timestamp(space)

	kept, ok := borrowOne(lw.Syllables(), lw.Span().Duration(), space, syllables)
	if !ok {
		return lw.Span().End, end
	}

	newEnd := lw.Span().Start + timecode.Timestamp(kept)
	work[left].Word = lw.Retimed(timecode.Range{Start: lw.Span().Start, End: newEnd})
	return newEnd, end
}

func borrowRight(work []Entry, space int64, syllables, right int) (timecode.Timestamp, timecode.Timestamp) {
	rw := work[right].Word
	start := rw.Span().Start - timecode.Timestamp(space)

	kept, ok := borrowOne(rw.Syllables(), rw.Span().Duration(), space, syllables)
	if !ok {
		return start, rw.Span().Start
	}

	newStart := rw.Span().End - timecode.Timestamp(kept)
	work[right].Word = rw.Retimed(timecode.Range{Start: newStart, End: rw.Span().End})
	return start, newStart
}

// borrowOne computes how much duration a lone neighbor keeps after the run
// takes its syllable-weighted share. Returns ok=false when there is no
// weight to split, in which case the neighbor stays untouched.
func borrowOne(neighborSyllables int, neighborDuration, space int64, syllables int) (int64, bool) {
	total := neighborSyllables + syllables
	if total == 0 {
		return 0, false
	}

	runDuration := max(0, roundMs(float64(neighborDuration)*float64(syllables)/float64(total))-space)
	returned := neighborDuration - runDuration
	kept := min(neighborDuration, roundMs(float64(returned)*float64(neighborSyllables)/float64(total)))
	return kept, true
}

func roundMs(v float64) int64 {
	return int64(math.Round(v))
}
