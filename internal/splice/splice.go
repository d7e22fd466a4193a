package splice

import (
	"errors"

	"retime/internal/timecode"
	"retime/internal/transcript"
)

// ErrEmptySequence indicates a splice with no reference window or no revised
// words to place.
var ErrEmptySequence = errors.New("empty word sequence")

// Assignment collects the revised words attached to one reference word,
// identified by its position in the reference sequence.
type Assignment struct {
	ReferenceIndex int
	Words          []transcript.Word
}

type distributeFunc func(est transcript.SyllableEstimator, texts []string, start, end timecode.Timestamp) []transcript.Word

// BySyllables distributes the revised texts across the reference window
// weighted by syllable count, then assigns each distributed word to a
// reference word. Assignments come back in reference order, one per
// reference word, possibly empty.
func BySyllables(est transcript.SyllableEstimator, reference, revised []transcript.Word) ([]Assignment, error) {
	return spliceWith(est, reference, revised, transcript.DistributeBySyllables)
}

// Evenly is BySyllables over an equal-weight distribution.
func Evenly(est transcript.SyllableEstimator, reference, revised []transcript.Word) ([]Assignment, error) {
	return spliceWith(est, reference, revised, distributeEvenly)
}

func distributeEvenly(est transcript.SyllableEstimator, texts []string, start, end timecode.Timestamp) []transcript.Word {
	items := make([]transcript.Item, len(texts))
	for i, text := range texts {
		items[i] = transcript.Item{Text: text, Weight: 1}
	}
	return transcript.Distribute(est, items, start, int64(end-start))
}

func spliceWith(est transcript.SyllableEstimator, reference, revised []transcript.Word, distribute distributeFunc) ([]Assignment, error) {
	if len(reference) == 0 || len(revised) == 0 {
		return nil, ErrEmptySequence
	}

	texts := make([]string, len(revised))
	for i, w := range revised {
		texts[i] = w.Text()
	}
	start := reference[0].Span().Start
	end := reference[len(reference)-1].Span().End
	normalized := distribute(est, texts, start, end)

	assignments := make([]Assignment, len(reference))
	absorbed := make([]int, len(reference))
	for i := range reference {
		assignments[i] = Assignment{ReferenceIndex: i}
	}

	// Greedy attachment: best overlap wins, discounted by the syllables the
	// reference word has already absorbed so a single busy word does not
	// swallow the whole distribution.
	for _, w := range normalized {
		best := 0
		bestScore := -1.0
		for i, ref := range reference {
			score := ref.Span().IntersectionPercent(w.Span()) / float64(absorbed[i]+1)
			if score > bestScore {
				best = i
				bestScore = score
			}
		}
		assignments[best].Words = append(assignments[best].Words, w)
		absorbed[best] += w.Syllables()
	}

	return assignments, nil
}
