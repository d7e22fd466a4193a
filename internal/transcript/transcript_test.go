package transcript_test

import (
	"testing"

	"retime/internal/syllable"
	"retime/internal/timecode"
	"retime/internal/transcript"
)

var est = syllable.Estimator{}

func span(start, end int64) timecode.Range {
	return timecode.Range{Start: timecode.Timestamp(start), End: timecode.Timestamp(end)}
}

func TestNewWord(t *testing.T) {
	w := transcript.NewWord(est, "beautiful", span(100, 600))
	if w.Text() != "beautiful" {
		t.Errorf("Text() = %q", w.Text())
	}
	if w.Span() != span(100, 600) {
		t.Errorf("Span() = %v", w.Span())
	}
	if w.Syllables() != 3 {
		t.Errorf("Syllables() = %d, want 3", w.Syllables())
	}
}

type negativeEstimator struct{}

func (negativeEstimator) Estimate(string) int { return -2 }

func TestNewWordClampsNegativeEstimates(t *testing.T) {
	w := transcript.NewWord(negativeEstimator{}, "word", span(0, 100))
	if w.Syllables() != 0 {
		t.Errorf("Syllables() = %d, want 0", w.Syllables())
	}
}

func TestRetimed(t *testing.T) {
	w := transcript.NewWord(est, "hello", span(0, 250))
	moved := w.Retimed(span(500, 750))
	if moved.Text() != "hello" || moved.Syllables() != w.Syllables() {
		t.Errorf("Retimed changed text or syllables: %v", moved)
	}
	if moved.Span() != span(500, 750) {
		t.Errorf("Retimed span = %v", moved.Span())
	}
	if w.Span() != span(0, 250) {
		t.Errorf("original mutated: %v", w.Span())
	}
}

func TestDistributeProportions(t *testing.T) {
	items := []transcript.Item{
		{Text: "a", Weight: 1},
		{Text: "b", Weight: 2},
		{Text: "c", Weight: 1},
	}
	words := transcript.Distribute(est, items, 1000, 400)

	wantSpans := []timecode.Range{span(1000, 1100), span(1100, 1300), span(1300, 1400)}
	if len(words) != len(wantSpans) {
		t.Fatalf("len = %d, want %d", len(words), len(wantSpans))
	}
	for i, w := range words {
		if w.Span() != wantSpans[i] {
			t.Errorf("words[%d].Span() = %v, want %v", i, w.Span(), wantSpans[i])
		}
	}
}

func TestDistributeNoDrift(t *testing.T) {
	// Three equal weights over a duration not divisible by three: the slices
	// stay contiguous and the last one ends exactly at the window end.
	items := []transcript.Item{{Text: "x", Weight: 1}, {Text: "y", Weight: 1}, {Text: "z", Weight: 1}}
	words := transcript.Distribute(est, items, 0, 1000)

	if got := words[len(words)-1].Span().End; got != 1000 {
		t.Errorf("last end = %d, want 1000", got)
	}
	for i := 1; i < len(words); i++ {
		if words[i].Span().Start != words[i-1].Span().End {
			t.Errorf("gap between words %d and %d: %v then %v", i-1, i, words[i-1].Span(), words[i].Span())
		}
	}
}

func TestDistributeZeroWeightItems(t *testing.T) {
	items := []transcript.Item{
		{Text: "a", Weight: 1},
		{Text: "", Weight: 0},
		{Text: "b", Weight: 1},
	}
	words := transcript.Distribute(est, items, 0, 200)
	if d := words[1].Span().Duration(); d != 0 {
		t.Errorf("zero-weight item duration = %d, want 0", d)
	}
	if words[0].Span() != span(0, 100) || words[2].Span() != span(100, 200) {
		t.Errorf("spans = %v, %v", words[0].Span(), words[2].Span())
	}
}

func TestDistributeAllZeroWeightsFallsBackToEven(t *testing.T) {
	items := []transcript.Item{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}
	words := transcript.Distribute(est, items, 0, 400)
	for i, w := range words {
		if d := w.Span().Duration(); d != 100 {
			t.Errorf("words[%d] duration = %d, want 100", i, d)
		}
	}
}

func TestDistributeBySyllables(t *testing.T) {
	// "hello" (2) and "world" (1) split 300ms as 200/100.
	words := transcript.DistributeBySyllables(est, []string{"hello", "world"}, 0, 300)
	if words[0].Span() != span(0, 200) {
		t.Errorf("hello span = %v, want 0-200", words[0].Span())
	}
	if words[1].Span() != span(200, 300) {
		t.Errorf("world span = %v, want 200-300", words[1].Span())
	}
}

func TestDistributeByCharacters(t *testing.T) {
	words := transcript.DistributeByCharacters(est, []string{"ab", "abcdef"}, 0, 400)
	if words[0].Span() != span(0, 100) {
		t.Errorf("first span = %v, want 0-100", words[0].Span())
	}
	if words[1].Span() != span(100, 400) {
		t.Errorf("second span = %v, want 100-400", words[1].Span())
	}
}

func TestPauses(t *testing.T) {
	words := []transcript.Word{
		transcript.NewWord(est, "a", span(0, 100)),
		transcript.NewWord(est, "b", span(100, 200)), // touching, no pause
		transcript.NewWord(est, "c", span(350, 400)), // 150ms pause
		transcript.NewWord(est, "d", span(380, 500)), // overlap, no pause
		transcript.NewWord(est, "e", span(600, 700)), // 100ms pause
	}

	pauses := transcript.Pauses(words)
	want := []timecode.Range{span(200, 350), span(500, 600)}
	if len(pauses) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(pauses), len(want), pauses)
	}
	for i := range want {
		if pauses[i] != want[i] {
			t.Errorf("pauses[%d] = %v, want %v", i, pauses[i], want[i])
		}
	}
}

func TestPausesDegenerateInputs(t *testing.T) {
	if got := transcript.Pauses(nil); got != nil {
		t.Errorf("Pauses(nil) = %v, want nil", got)
	}
	one := []transcript.Word{transcript.NewWord(est, "a", span(0, 100))}
	if got := transcript.Pauses(one); got != nil {
		t.Errorf("Pauses(one word) = %v, want nil", got)
	}
}
