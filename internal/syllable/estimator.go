package syllable

import (
	"regexp"
	"strings"
	"unicode"
)

// Estimator counts syllables with a vowel-run heuristic. The zero value is
// ready to use.
type Estimator struct{}

var (
	vowelRuns  = regexp.MustCompile(`[aeiouy]+`)
	exceptions = regexp.MustCompile(`[^aeiou]e[sd]?$|[^e]ely$`)
	// additions carries the adjustment patterns minus the one lookahead case,
	// which RE2 cannot express; trailing "ian" is corrected separately below.
	additions = regexp.MustCompile(`[^aeioulr][lr]e[sd]?$|[csgz]es$|[td]ed$|.y[aeiou]|ia|eo|ism$|[^aeiou]ire$|[^gq]ua`)
)

// Estimate returns the estimated syllable count for text. Tokens without any
// letter (punctuation, digits, empty text) estimate zero; any token with a
// letter estimates at least one.
func (Estimator) Estimate(text string) int {
	lower := strings.ToLower(strings.TrimSpace(text))
	if !hasLetter(lower) {
		return 0
	}

	count := len(vowelRuns.FindAllString(lower, -1))
	count -= len(exceptions.FindAllString(lower, -1))
	count += len(additions.FindAllString(lower, -1))
	// The source pattern is ia(?!n$): an "ia" immediately before a final "n"
	// does not add a syllable.
	if strings.HasSuffix(lower, "ian") {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
