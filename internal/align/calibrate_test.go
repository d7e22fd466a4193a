package align_test

import (
	"testing"

	"retime/internal/align"
	"retime/internal/timecode"
	"retime/internal/transcript"
)

// checkNoOverlap verifies the output invariants: every non-removed entry has
// a valid range and consecutive non-removed entries never overlap.
func checkNoOverlap(t *testing.T, entries []align.Entry) {
	t.Helper()

	var active []align.Entry
	for _, entry := range entries {
		if entry.Op != align.OpRemoved {
			active = append(active, entry)
		}
	}

	for _, entry := range active {
		s := entry.Word.Span()
		if s.Start >= s.End {
			t.Errorf("word %q has invalid range %v", entry.Word.Text(), s)
		}
	}
	for i := 1; i < len(active); i++ {
		prev, next := active[i-1], active[i]
		if prev.Word.Span().End > next.Word.Span().Start {
			t.Errorf("words %q and %q overlap: %v then %v",
				prev.Word.Text(), next.Word.Text(), prev.Word.Span(), next.Word.Span())
		}
	}
}

func retime(t *testing.T, reference, revised []transcript.Word) []align.Entry {
	t.Helper()
	entries := align.Compare(reference, revised)
	calibrated := align.Calibrate(entries, align.DefaultCalibrateOptions())
	checkNoOverlap(t, calibrated)
	return calibrated
}

func spanOf(entries []align.Entry, text string) timecode.Range {
	for _, entry := range entries {
		if entry.Op != align.OpRemoved && entry.Word.Text() == text {
			return entry.Word.Span()
		}
	}
	return timecode.Range{}
}

func TestCalibrateWordRemoval(t *testing.T) {
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	calibrated := retime(t, reference, untimed("Hello"))

	// Nothing to calibrate: both entries keep their reference timing.
	if got := spanOf(calibrated, "Hello"); got != span(0, 250) {
		t.Errorf("Hello span = %v, want untouched 0-250", got)
	}
	if calibrated[1].Op != align.OpRemoved || calibrated[1].Word.Span() != span(250, 1000) {
		t.Errorf("removed entry = %v, want World placeholder at 250-1000", calibrated[1])
	}
}

func TestCalibrateWordSqueeze(t *testing.T) {
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	calibrated := retime(t, reference, untimed("Hello", "Beautiful", "World"))

	// Hello (2 syl, 250ms) and World (1 syl, 750ms) pool 1000ms; Beautiful
	// (3 syl) claims half, the rest flows back 40/60 by weighted share.
	if got := spanOf(calibrated, "Hello"); got != span(0, 200) {
		t.Errorf("Hello span = %v, want 0-200", got)
	}
	if got := spanOf(calibrated, "Beautiful"); got != span(200, 700) {
		t.Errorf("Beautiful span = %v, want 200-700", got)
	}
	if got := spanOf(calibrated, "World"); got != span(700, 1000) {
		t.Errorf("World span = %v, want 700-1000", got)
	}
	if calibrated[1].Op != align.OpAdded {
		t.Errorf("Beautiful op = %v, want added after calibration", calibrated[1].Op)
	}
	if calibrated[1].Index != 1 {
		t.Errorf("Beautiful index = %d, want revised index preserved", calibrated[1].Index)
	}
}

func TestCalibrateSufficientGapSkipsBorrowing(t *testing.T) {
	// The 250ms gap before Gatsby already satisfies Silly's 200ms demand, so
	// the neighbors stay untouched and Silly drops into the gap.
	reference := []transcript.Word{
		word("The", 0, 250),
		word("Great", 250, 500),
		word("Gatsby", 750, 1000),
	}
	calibrated := retime(t, reference, untimed("The", "Great", "Silly", "Gatsby"))

	if got := spanOf(calibrated, "Great"); got != span(250, 500) {
		t.Errorf("Great span = %v, want untouched 250-500", got)
	}
	if got := spanOf(calibrated, "Gatsby"); got != span(750, 1000) {
		t.Errorf("Gatsby span = %v, want untouched 750-1000", got)
	}
	if got := spanOf(calibrated, "Silly"); got != span(500, 750) {
		t.Errorf("Silly span = %v, want the gap 500-750", got)
	}
}

func TestCalibrateLongWordAddition(t *testing.T) {
	reference := []transcript.Word{
		word("The", 0, 250),
		word("Great", 250, 500),
		word("Gatsby", 750, 1000),
	}
	calibrated := retime(t, reference,
		untimed("The", "Great", "Supercalifragilisticexpialidocious", "Gatsby"))

	// The gap cannot satisfy a word this heavy; the neighbors give up most
	// of their duration but the invariants still hold (checked by retime).
	long := spanOf(calibrated, "Supercalifragilisticexpialidocious")
	if long.Duration() <= 250 {
		t.Errorf("long word duration = %d, want more than the bare gap", long.Duration())
	}
}

func TestCalibrateMultipleWordAddition(t *testing.T) {
	reference := []transcript.Word{
		word("The", 0, 250),
		word("Great", 250, 500),
		word("Gatsby", 750, 1000),
	}
	calibrated := retime(t, reference,
		untimed("The", "Great", "And", "Silly", "Wonderful", "Gatsby"))

	// The inserted run subdivides one contiguous window in order.
	and := spanOf(calibrated, "And")
	silly := spanOf(calibrated, "Silly")
	wonderful := spanOf(calibrated, "Wonderful")
	if and.End != silly.Start || silly.End != wonderful.Start {
		t.Errorf("run not contiguous: %v, %v, %v", and, silly, wonderful)
	}
}

func TestCalibrateLeftAddition(t *testing.T) {
	reference := []transcript.Word{word("Great", 0, 500), word("Gatsby", 500, 1000)}
	calibrated := retime(t, reference, untimed("The", "Great", "Gatsby"))

	// Only a right neighbor exists: Great yields its head. One syllable
	// against one puts the split at round(500/2)-adjusted 375.
	if got := spanOf(calibrated, "The"); got != span(0, 375) {
		t.Errorf("The span = %v, want 0-375", got)
	}
	if got := spanOf(calibrated, "Great"); got != span(375, 500) {
		t.Errorf("Great span = %v, want 375-500", got)
	}
	if got := spanOf(calibrated, "Gatsby"); got != span(500, 1000) {
		t.Errorf("Gatsby span = %v, want untouched 500-1000", got)
	}
}

func TestCalibrateRightAddition(t *testing.T) {
	reference := []transcript.Word{word("The", 0, 500), word("Great", 500, 1000)}
	calibrated := retime(t, reference, untimed("The", "Great", "Gatsby"))

	if got := spanOf(calibrated, "Great"); got != span(500, 556) {
		t.Errorf("Great span = %v, want shrunk 500-556", got)
	}
	if got := spanOf(calibrated, "Gatsby"); got != span(556, 1000) {
		t.Errorf("Gatsby span = %v, want the freed tail 556-1000", got)
	}
}

func TestCalibrateWordReplacement(t *testing.T) {
	reference := []transcript.Word{
		word("The", 0, 200),
		word("Big", 200, 400),
		word("Brown", 400, 600),
		word("Fox", 600, 800),
	}
	calibrated := retime(t, reference, untimed("The", "Big", "Red", "Fox"))

	// Red inherited Brown's span via the donor queue in Compare; nothing is
	// uncalibrated, so Calibrate changes nothing.
	if got := spanOf(calibrated, "Red"); got != span(400, 600) {
		t.Errorf("Red span = %v, want donor span 400-600", got)
	}
	if got := spanOf(calibrated, "Fox"); got != span(600, 800) {
		t.Errorf("Fox span = %v, want untouched 600-800", got)
	}
}

func TestCalibrateNoNeighborsCollapsesToOrigin(t *testing.T) {
	// A revision with no timed reference at all degrades to zero-duration
	// placements at the origin rather than failing.
	entries := align.Compare(nil, untimed("lonely", "words"))
	calibrated := align.Calibrate(entries, align.DefaultCalibrateOptions())

	for i, entry := range calibrated {
		if entry.Op != align.OpAdded {
			t.Errorf("entries[%d].Op = %v, want added", i, entry.Op)
		}
		if entry.Word.Span() != span(0, 0) {
			t.Errorf("entries[%d].Span = %v, want zero-duration at origin", i, entry.Word.Span())
		}
	}
}

func TestCalibrateDoesNotMutateInput(t *testing.T) {
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	entries := align.Compare(reference, untimed("Hello", "Beautiful", "World"))

	snapshot := make([]align.Entry, len(entries))
	copy(snapshot, entries)

	align.Calibrate(entries, align.DefaultCalibrateOptions())

	for i := range snapshot {
		if entries[i] != snapshot[i] {
			t.Errorf("input entry %d mutated: %v, was %v", i, entries[i], snapshot[i])
		}
	}
}

func TestCalibrateConservation(t *testing.T) {
	// Borrowing redistributes the neighborhood's duration; it never creates
	// time. The phrase plus its shrunken neighbors stays inside the span the
	// neighborhood covered before borrowing.
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	calibrated := retime(t, reference, untimed("Hello", "Beautiful", "World"))

	first := spanOf(calibrated, "Hello")
	last := spanOf(calibrated, "World")
	if first.Start < 0 || last.End > 1000 {
		t.Errorf("neighborhood grew: %v .. %v, want within 0-1000", first, last)
	}
}

func TestCalibrateZeroSyllablePhraseSplitsEvenly(t *testing.T) {
	reference := []transcript.Word{word("one", 0, 400), word("two", 400, 800)}
	// Punctuation-only tokens estimate zero syllables, so the phrase gets a
	// zero-width window: an accepted degenerate, split evenly.
	entries := align.Compare(reference, untimed("one", "...", "!!!", "two"))
	calibrated := align.Calibrate(entries, align.DefaultCalibrateOptions())

	var phrase []align.Entry
	for _, entry := range calibrated {
		if entry.Word.Text() == "..." || entry.Word.Text() == "!!!" {
			phrase = append(phrase, entry)
		}
	}
	if len(phrase) != 2 {
		t.Fatalf("phrase entries = %d, want 2", len(phrase))
	}
	if phrase[0].Word.Span().Duration() != phrase[1].Word.Span().Duration() {
		t.Errorf("even split expected, got %v and %v",
			phrase[0].Word.Span(), phrase[1].Word.Span())
	}
}

func TestCalibrateCustomThresholds(t *testing.T) {
	// With thresholds of zero, any existing gap is enough and no borrowing
	// happens even for a tight squeeze.
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	entries := align.Compare(reference, untimed("Hello", "Beautiful", "World"))

	calibrated := align.Calibrate(entries, align.CalibrateOptions{})
	if got := spanOf(calibrated, "Hello"); got != span(0, 250) {
		t.Errorf("Hello span = %v, want untouched with zero thresholds", got)
	}
	// The gap between touching neighbors is zero, so the squeezed word
	// collapses at the boundary.
	if got := spanOf(calibrated, "Beautiful"); got != span(250, 250) {
		t.Errorf("Beautiful span = %v, want collapsed at 250", got)
	}
}
