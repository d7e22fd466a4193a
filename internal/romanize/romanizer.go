package romanize

import (
	"strings"
	"sync"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Options selects which normalization stages a Romanizer applies.
type Options struct {
	// Japanese enables kanji and kana transliteration through the kagome
	// tokenizer. The IPA dictionary is heavy, so it loads lazily on the
	// first Japanese input.
	Japanese bool
}

// Romanizer folds text toward Latin script. Safe for concurrent use.
type Romanizer struct {
	japanese bool

	tokOnce sync.Once
	tok     *tokenizer.Tokenizer
	tokErr  error
}

// New constructs a Romanizer. The caller owns its lifecycle; constructing
// one per process and sharing it is the intended use.
func New(opts Options) *Romanizer {
	return &Romanizer{japanese: opts.Japanese}
}

// foldTransform normalizes width forms and strips combining marks so that
// accented and full-width variants compare equal to their plain forms.
var foldTransform = transform.Chain(
	width.Fold,
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Romanize returns the folded (and, when enabled, transliterated) form of
// text. It never fails; anything it cannot improve passes through folded.
func (r *Romanizer) Romanize(text string) string {
	if r.japanese && containsJapanese(text) {
		text = r.transliterateJapanese(text)
	}
	folded, _, err := transform.String(foldTransform, text)
	if err != nil {
		return text
	}
	return folded
}

func (r *Romanizer) transliterateJapanese(text string) string {
	r.tokOnce.Do(func() {
		r.tok, r.tokErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	if r.tokErr != nil {
		return text
	}

	// Readings join before conversion: a sokuon ending one token geminates
	// the consonant starting the next (切っ+て reads キッ+テ, "kitte").
	var kana strings.Builder
	for _, token := range r.tok.Tokenize(text) {
		reading, ok := token.Reading()
		if !ok || reading == "" || reading == "*" {
			kana.WriteString(token.Surface)
			continue
		}
		kana.WriteString(reading)
	}
	return kanaToRomaji(kana.String())
}

func containsJapanese(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}
