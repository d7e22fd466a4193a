package timedtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"retime/internal/timecode"
	"retime/internal/transcript"
)

// ErrMalformedLRC indicates an LRC time tag that does not parse.
var ErrMalformedLRC = errors.New("malformed lrc tag")

// DefaultWordDuration bounds the last word of an LRC line when no closing
// tag follows it, in milliseconds.
const DefaultWordDuration int64 = 500

var (
	lrcLineTag = regexp.MustCompile(`^\[(\d{1,3}):(\d{2})\.(\d{2,3})\]`)
	lrcWordTag = regexp.MustCompile(`<(\d{1,3}):(\d{2})\.(\d{2,3})>`)
	lrcMetaTag = regexp.MustCompile(`^\[[a-zA-Z#][^\]]*\]`)
)

// ParseLRC reads simple and enhanced LRC. A line tag [mm:ss.xx] opens each
// line; word tags <mm:ss.xx> time individual words. A word ends at the next
// tag in its line; the line's last word runs to the following line tag or,
// on simple lines, words are distributed across the line span by syllable
// weight. Both centisecond and millisecond fractions parse. Metadata tags
// ([ar:...], [ti:...]) are skipped.
func ParseLRC(est transcript.SyllableEstimator, r io.Reader) ([]Line, error) {
	return ParseLRCTail(est, r, DefaultWordDuration)
}

// ParseLRCTail is ParseLRC with a configurable tail duration for the final
// line, in milliseconds.
func ParseLRCTail(est transcript.SyllableEstimator, r io.Reader, tail int64) ([]Line, error) {
	scanner := bufio.NewScanner(r)

	type rawLine struct {
		start timecode.Timestamp
		body  string
	}
	var raws []rawLine
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		match := lrcLineTag.FindStringSubmatch(text)
		if match == nil {
			if lrcMetaTag.MatchString(text) {
				continue
			}
			return nil, fmt.Errorf("%w: line %q", ErrMalformedLRC, text)
		}
		start, err := lrcTimestamp(match)
		if err != nil {
			return nil, err
		}
		raws = append(raws, rawLine{start: start, body: text[len(match[0]):]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lrc: %w", err)
	}

	lines := make([]Line, 0, len(raws))
	for i, raw := range raws {
		// The next line tag bounds this line; the last line gets a tail.
		lineEnd := raw.start + timecode.Timestamp(tail)
		if i+1 < len(raws) {
			lineEnd = raws[i+1].start
		}
		line, err := parseLRCBody(est, raw.start, lineEnd, raw.body)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseLRCBody(est transcript.SyllableEstimator, start, end timecode.Timestamp, body string) (Line, error) {
	tags := lrcWordTag.FindAllStringSubmatchIndex(body, -1)
	if len(tags) == 0 {
		// Simple line: distribute the words across the line span.
		text := strings.TrimSpace(body)
		words := transcript.DistributeBySyllables(est, strings.Fields(text), start, end)
		return Line{
			Span:  timecode.Range{Start: start, End: end},
			Words: words,
			Text:  text,
		}, nil
	}

	// Enhanced line: each word runs from its tag to the next tag or the
	// line end. Text before the first tag is untagged lead-in; it takes the
	// line start.
	type segment struct {
		at   timecode.Timestamp
		text string
	}
	var segments []segment
	if lead := strings.TrimSpace(body[:tags[0][0]]); lead != "" {
		segments = append(segments, segment{at: start, text: lead})
	}
	for i, tag := range tags {
		at, err := lrcTimestamp([]string{
			body[tag[0]:tag[1]],
			body[tag[2]:tag[3]],
			body[tag[4]:tag[5]],
			body[tag[6]:tag[7]],
		})
		if err != nil {
			return Line{}, err
		}
		textEnd := len(body)
		if i+1 < len(tags) {
			textEnd = tags[i+1][0]
		}
		text := strings.TrimSpace(body[tag[1]:textEnd])
		if text == "" {
			// A trailing bare tag closes the previous word.
			if len(segments) > 0 && i == len(tags)-1 {
				end = at
			}
			continue
		}
		segments = append(segments, segment{at: at, text: text})
	}

	var words []transcript.Word
	var texts []string
	for i, seg := range segments {
		segEnd := end
		if i+1 < len(segments) {
			segEnd = segments[i+1].at
		}
		for _, w := range transcript.DistributeBySyllables(est, strings.Fields(seg.text), seg.at, segEnd) {
			words = append(words, w)
			texts = append(texts, w.Text())
		}
	}
	return Line{
		Span:  timecode.Range{Start: start, End: end},
		Words: words,
		Text:  strings.Join(texts, " "),
	}, nil
}

// WriteLRC writes enhanced LRC: a line tag per line and a word tag before
// every word, centisecond precision (the LRC convention).
func WriteLRC(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		bw.WriteString(lrcTag(line.Span.Start, '[', ']'))
		for i, word := range line.Words {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(lrcTag(word.Span().Start, '<', '>'))
			bw.WriteString(word.Text())
		}
		if len(line.Words) > 0 {
			bw.WriteString(lrcTag(line.Words[len(line.Words)-1].Span().End, '<', '>'))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write lrc: %w", err)
	}
	return nil
}

// lrcTimestamp converts a matched [mm, ss, fraction] tag to a timestamp.
// Two-digit fractions are centiseconds, three-digit are milliseconds.
func lrcTimestamp(match []string) (timecode.Timestamp, error) {
	minutes, err1 := strconv.ParseInt(match[1], 10, 64)
	seconds, err2 := strconv.ParseInt(match[2], 10, 64)
	fraction, err3 := strconv.ParseInt(match[3], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLRC, match[0])
	}
	if len(match[3]) == 2 {
		fraction *= 10
	}
	return timecode.Timestamp(minutes*60_000 + seconds*1000 + fraction), nil
}

func lrcTag(ts timecode.Timestamp, opener, closer byte) string {
	ms := ts.Milliseconds()
	return fmt.Sprintf("%c%02d:%02d.%02d%c",
		opener, ms/60_000, ms%60_000/1000, ms%1000/10, closer)
}
