package align_test

import (
	"strings"
	"testing"

	"retime/internal/align"
	"retime/internal/syllable"
	"retime/internal/timecode"
	"retime/internal/transcript"
)

var est = syllable.Estimator{}

func span(start, end int64) timecode.Range {
	return timecode.Range{Start: timecode.Timestamp(start), End: timecode.Timestamp(end)}
}

func word(text string, start, end int64) transcript.Word {
	return transcript.NewWord(est, text, span(start, end))
}

// untimed builds revised-sequence words whose spans are not yet meaningful.
func untimed(texts ...string) []transcript.Word {
	words := make([]transcript.Word, len(texts))
	for i, text := range texts {
		words[i] = word(text, 0, 0)
	}
	return words
}

func TestCompareUnchangedAndRemoved(t *testing.T) {
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	revised := untimed("Hello")

	entries := align.Compare(reference, revised)

	want := []align.Entry{
		{Index: 0, Word: reference[0], Op: align.OpUnchanged},
		{Index: 1, Word: reference[1], Op: align.OpRemoved},
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %v, want %v", i, entries[i], want[i])
		}
	}
}

func TestCompareInsertionWithoutDonor(t *testing.T) {
	reference := []transcript.Word{word("Hello", 0, 250), word("World", 250, 1000)}
	revised := untimed("Hello", "Beautiful", "World")

	entries := align.Compare(reference, revised)

	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Op != align.OpUnchanged || entries[2].Op != align.OpUnchanged {
		t.Errorf("boundary ops = %v, %v, want unchanged", entries[0].Op, entries[2].Op)
	}
	middle := entries[1]
	if middle.Op != align.OpUncalibrated {
		t.Errorf("middle op = %v, want uncalibrated", middle.Op)
	}
	if middle.Index != 1 {
		t.Errorf("middle index = %d, want revised index 1", middle.Index)
	}
	if middle.Word.Text() != "Beautiful" {
		t.Errorf("middle text = %q", middle.Word.Text())
	}
}

func TestCompareReplacementInheritsDonorTiming(t *testing.T) {
	reference := []transcript.Word{
		word("The", 0, 200),
		word("Big", 200, 400),
		word("Brown", 400, 600),
		word("Fox", 600, 800),
	}
	revised := untimed("The", "Big", "Red", "Fox")

	entries := align.Compare(reference, revised)

	if len(entries) != 5 {
		t.Fatalf("len = %d, want 5", len(entries))
	}
	removed := entries[2]
	if removed.Op != align.OpRemoved || removed.Word.Text() != "Brown" || removed.Index != 2 {
		t.Errorf("removed entry = %v", removed)
	}
	added := entries[3]
	if added.Op != align.OpAdded {
		t.Errorf("replacement op = %v, want added", added.Op)
	}
	if added.Word.Text() != "Red" {
		t.Errorf("replacement text = %q", added.Word.Text())
	}
	if added.Word.Span() != span(400, 600) {
		t.Errorf("replacement span = %v, want donor span 400-600", added.Word.Span())
	}
	if added.Index != 2 {
		t.Errorf("replacement index = %d, want revised index 2", added.Index)
	}
}

func TestCompareDonorQueueSpansHunks(t *testing.T) {
	// The removal at the head donates its timing to the insertion at the
	// tail: the donor queue is FIFO across the whole walk, never cleared
	// between hunks.
	reference := []transcript.Word{word("A", 0, 100), word("B", 100, 200)}
	revised := untimed("B", "C")

	entries := align.Compare(reference, revised)

	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	last := entries[2]
	if last.Op != align.OpAdded {
		t.Errorf("tail op = %v, want added", last.Op)
	}
	if last.Word.Span() != span(0, 100) {
		t.Errorf("tail span = %v, want donated 0-100", last.Word.Span())
	}
}

func TestCompareEmptySequences(t *testing.T) {
	if entries := align.Compare(nil, nil); len(entries) != 0 {
		t.Errorf("Compare(nil, nil) = %v, want empty", entries)
	}

	reference := []transcript.Word{word("Hello", 0, 250)}
	entries := align.Compare(reference, nil)
	if len(entries) != 1 || entries[0].Op != align.OpRemoved {
		t.Errorf("Compare(ref, nil) = %v, want one removed entry", entries)
	}

	entries = align.Compare(nil, untimed("Hello"))
	if len(entries) != 1 || entries[0].Op != align.OpUncalibrated {
		t.Errorf("Compare(nil, rev) = %v, want one uncalibrated entry", entries)
	}
}

func TestCompareKeyed(t *testing.T) {
	reference := []transcript.Word{word("Hello,", 0, 250), word("WORLD", 250, 1000)}
	revised := untimed("hello", "world")

	key := func(text string) string {
		return strings.ToLower(strings.Trim(text, ",.!?"))
	}

	entries := align.CompareKeyed(reference, revised, key)
	for i, entry := range entries {
		if entry.Op != align.OpUnchanged {
			t.Errorf("entries[%d].Op = %v, want unchanged", i, entry.Op)
		}
	}
	// The reference words, not the keyed forms, flow through.
	if entries[0].Word.Text() != "Hello," {
		t.Errorf("entries[0] text = %q, want original reference text", entries[0].Word.Text())
	}
}

func TestEntryString(t *testing.T) {
	entry := align.Entry{Index: 3, Word: word("hello", 100, 350), Op: align.OpAdded}
	if got, want := entry.String(), "+ [3] hello @ 2: 100 - 350"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
