package romanize

import "strings"

// kanaDigraphs maps two-rune kana sequences (consonant + small y-vowel) to
// Hepburn romaji. Checked before the single-kana table.
var kanaDigraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho",
	"チャ": "cha", "チュ": "chu", "チョ": "cho",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
}

// kanaSingles maps single katakana to Hepburn romaji.
var kanaSingles = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヲ': "o", 'ン': "n",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
	'ヴ': "vu",
}

// kanaToRomaji transliterates kana text to Hepburn romaji. Hiragana is
// shifted to katakana first; the sokuon doubles the following consonant and
// the long-vowel mark repeats the preceding vowel. Non-kana runes pass
// through unchanged.
func kanaToRomaji(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		// Hiragana block shifts onto katakana by a fixed offset.
		if r >= 'ぁ' && r <= 'ゖ' {
			runes[i] = r + ('ァ' - 'ぁ')
		}
	}

	var sb strings.Builder
	pendingSokuon := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == 'ッ' {
			pendingSokuon = true
			continue
		}
		if r == 'ー' {
			if s := sb.String(); s != "" {
				sb.WriteByte(s[len(s)-1])
			}
			continue
		}

		var romaji string
		if i+1 < len(runes) {
			if d, ok := kanaDigraphs[string(runes[i:i+2])]; ok {
				romaji = d
				i++
			}
		}
		if romaji == "" {
			if s, ok := kanaSingles[r]; ok {
				romaji = s
			} else {
				sb.WriteRune(r)
				pendingSokuon = false
				continue
			}
		}

		if pendingSokuon && len(romaji) > 0 {
			sb.WriteByte(romaji[0])
			pendingSokuon = false
		}
		sb.WriteString(romaji)
	}
	return sb.String()
}
