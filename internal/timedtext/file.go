package timedtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"retime/internal/timecode"
	"retime/internal/transcript"
)

// ErrUnsupportedFormat indicates a file extension this package cannot
// dispatch on.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies a timed-text document format.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatLRC  Format = "lrc"
	FormatText Format = "txt"
)

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "srt":
		return FormatSRT, nil
	case "lrc":
		return FormatLRC, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	return "." + string(f)
}

// ReadFile parses path according to its extension.
func ReadFile(est transcript.SyllableEstimator, path string) ([]Line, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return Parse(est, format, file)
}

// Parse reads one document in the given format.
func Parse(est transcript.SyllableEstimator, format Format, r io.Reader) ([]Line, error) {
	switch format {
	case FormatSRT:
		return ParseSRT(est, r)
	case FormatLRC:
		return ParseLRC(est, r)
	case FormatText:
		return ParseText(est, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile writes lines to path in the given format. Plain text output
// drops timing.
func WriteFile(path string, format Format, lines []Line) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, format, lines); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Write emits one document in the given format.
func Write(w io.Writer, format Format, lines []Line) error {
	switch format {
	case FormatSRT:
		return WriteSRT(w, lines)
	case FormatLRC:
		return WriteLRC(w, lines)
	case FormatText:
		return writeText(w, lines)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseText reads plain text into one line per input line, every word at a
// zero span. This is the shape a revised sequence has before retiming: text
// without timing.
func ParseText(est transcript.SyllableEstimator, r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	var lines []Line
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		words := make([]transcript.Word, len(fields))
		for i, field := range fields {
			words[i] = transcript.NewWord(est, field, timecode.Range{})
		}
		lines = append(lines, Line{Words: words, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return lines, nil
}

func writeText(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		bw.WriteString(line.Text)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}
