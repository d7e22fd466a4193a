package transcript

import (
	"math"

	"retime/internal/timecode"
)

// Item pairs text with an arbitrary distribution weight.
type Item struct {
	Text   string
	Weight float64
}

// Distribute lays items out contiguously across [start, start+totalDuration)
// with each slice's length proportional to its weight. Boundaries are
// cursor-accumulated (each end is computed from the cumulative weight, not
// from an independently rounded per-item duration), so the last slice always
// ends exactly at start plus totalDuration. Negative weights count as zero;
// when every weight is zero the items are distributed evenly.
func Distribute(est SyllableEstimator, items []Item, start timecode.Timestamp, totalDuration int64) []Word {
	weights := make([]float64, len(items))
	var totalWeight float64
	for i, item := range items {
		if item.Weight > 0 {
			weights[i] = item.Weight
		}
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		for i := range weights {
			weights[i] = 1
		}
		totalWeight = float64(len(items))
	}

	words := make([]Word, 0, len(items))
	cursor := start
	var cumulative float64
	for i, item := range items {
		cumulative += weights[i]
		end := start + timecode.Timestamp(math.Round(float64(totalDuration)*cumulative/totalWeight))
		words = append(words, NewWord(est, item.Text, timecode.Range{Start: cursor, End: end}))
		cursor = end
	}
	return words
}

// DistributeBySyllables distributes texts across [start, end) weighted by
// estimated syllable count. Zero-syllable texts consume zero duration.
func DistributeBySyllables(est SyllableEstimator, texts []string, start, end timecode.Timestamp) []Word {
	items := make([]Item, len(texts))
	for i, text := range texts {
		items[i] = Item{Text: text, Weight: float64(est.Estimate(text))}
	}
	return Distribute(est, items, start, int64(end-start))
}

// DistributeByCharacters distributes texts across [start, end) weighted by
// rune count.
func DistributeByCharacters(est SyllableEstimator, texts []string, start, end timecode.Timestamp) []Word {
	items := make([]Item, len(texts))
	for i, text := range texts {
		items[i] = Item{Text: text, Weight: float64(len([]rune(text)))}
	}
	return Distribute(est, items, start, int64(end-start))
}
