package timedtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"retime/internal/timecode"
	"retime/internal/transcript"
)

// ErrMalformedCue indicates an SRT block without a valid timing line.
var ErrMalformedCue = errors.New("malformed srt cue")

// ParseSRT reads SubRip cues. SRT carries cue timing only, so each cue's
// words get spans synthesized by syllable-weighted distribution across the
// cue window.
func ParseSRT(est transcript.SyllableEstimator, r io.Reader) ([]Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	var lines []Line
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		rows := strings.Split(block, "\n")
		timingRow := -1
		for i, row := range rows {
			if strings.Contains(row, "-->") {
				timingRow = i
				break
			}
		}
		if timingRow < 0 || timingRow == len(rows)-1 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedCue, rows[0])
		}

		span, err := parseSRTTiming(rows[timingRow])
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(strings.Join(rows[timingRow+1:], "\n"))
		words := transcript.DistributeBySyllables(est, strings.Fields(text), span.Start, span.End)
		lines = append(lines, Line{Span: span, Words: words, Text: text})
	}
	return lines, nil
}

// WriteSRT writes lines as SubRip cues with 1-based indices and comma
// millisecond separators.
func WriteSRT(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for i, line := range lines {
		fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n",
			i+1,
			srtTimestamp(line.Span.Start),
			srtTimestamp(line.Span.End),
			line.Text,
		)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

func parseSRTTiming(row string) (timecode.Range, error) {
	parts := strings.Split(row, "-->")
	if len(parts) != 2 {
		return timecode.Range{}, fmt.Errorf("%w: timing %q", ErrMalformedCue, row)
	}
	start, err := parseSRTTimestamp(parts[0])
	if err != nil {
		return timecode.Range{}, err
	}
	end, err := parseSRTTimestamp(parts[1])
	if err != nil {
		return timecode.Range{}, err
	}
	return timecode.Range{Start: start, End: end}, nil
}

func parseSRTTimestamp(value string) (timecode.Timestamp, error) {
	// SRT uses a comma before the milliseconds; some files use a period.
	normalized := strings.Replace(strings.TrimSpace(value), ",", ".", 1)
	ts, err := timecode.ParseTimestamp(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: timestamp %q", ErrMalformedCue, value)
	}
	return ts, nil
}

func srtTimestamp(ts timecode.Timestamp) string {
	return strings.Replace(ts.Text(), ".", ",", 1)
}
