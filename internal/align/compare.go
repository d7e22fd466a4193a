package align

import (
	"github.com/pmezard/go-difflib/difflib"

	"retime/internal/transcript"
)

// Compare aligns revised against reference by a minimal edit script over
// word text and classifies every word. Removed reference words are emitted
// as placeholders and their spans feed a FIFO donor queue: the next inserted
// word with no timing of its own takes the oldest donor's span and comes out
// OpAdded. Insertions with no donor available come out OpUncalibrated and
// keep the revised word's own span, meaningful or not.
//
// The result is in edit-script order: reference order for unchanged/removed
// entries, revised order for added/uncalibrated ones, interleaved.
func Compare(reference, revised []transcript.Word) []Entry {
	return CompareKeyed(reference, revised, nil)
}

// CompareKeyed is Compare with equality judged on key(text) instead of the
// verbatim text. A nil key compares texts as-is. The emitted entries always
// carry the original words, never the keyed forms.
func CompareKeyed(reference, revised []transcript.Word, key func(string) string) []Entry {
	refTexts := keyedTexts(reference, key)
	revTexts := keyedTexts(revised, key)

	matcher := difflib.NewMatcher(refTexts, revTexts)

	var donors []transcript.Word
	entries := make([]Entry, 0, len(reference)+len(revised))

	emitDelete := func(i1, i2 int) {
		for i := i1; i < i2; i++ {
			entries = append(entries, Entry{Index: i, Word: reference[i], Op: OpRemoved})
			donors = append(donors, reference[i])
		}
	}
	emitInsert := func(j1, j2 int) {
		for j := j1; j < j2; j++ {
			word := revised[j]
			op := OpUncalibrated
			if len(donors) > 0 {
				word = word.Retimed(donors[0].Span())
				donors = donors[1:]
				op = OpAdded
			}
			entries = append(entries, Entry{Index: j, Word: word, Op: op})
		}
	}

	for _, opcode := range matcher.GetOpCodes() {
		switch opcode.Tag {
		case 'e':
			for i := opcode.I1; i < opcode.I2; i++ {
				entries = append(entries, Entry{Index: i, Word: reference[i], Op: OpUnchanged})
			}
		case 'd':
			emitDelete(opcode.I1, opcode.I2)
		case 'i':
			emitInsert(opcode.J1, opcode.J2)
		case 'r':
			emitDelete(opcode.I1, opcode.I2)
			emitInsert(opcode.J1, opcode.J2)
		}
	}

	return entries
}

func keyedTexts(words []transcript.Word, key func(string) string) []string {
	texts := make([]string, len(words))
	for i, word := range words {
		if key != nil {
			texts[i] = key(word.Text())
		} else {
			texts[i] = word.Text()
		}
	}
	return texts
}
