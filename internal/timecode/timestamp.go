package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Timestamp is an instant measured in milliseconds from the stream origin.
// Negative values are representable but carry no meaning; producers are
// expected to stay at or above zero.
type Timestamp int64

// ErrMalformedTimestamp indicates text that does not match HH:MM:SS.mmm.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// timestampPattern accepts zero-padded HH:MM:SS.mmm with two or more hour
// digits and three or more fraction digits. Extra fraction digits are
// truncated to millisecond precision, never rounded.
var timestampPattern = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})\.(\d{3,})$`)

// ParseTimestamp parses strict HH:MM:SS.mmm text. Surrounding whitespace is
// tolerated; any other deviation is rejected.
func ParseTimestamp(text string) (Timestamp, error) {
	match := timestampPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, fmt.Errorf("%w: %q (want HH:MM:SS.mmm)", ErrMalformedTimestamp, text)
	}

	hours, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, text, err)
	}
	minutes, _ := strconv.ParseInt(match[2], 10, 64)
	seconds, _ := strconv.ParseInt(match[3], 10, 64)
	millis, _ := strconv.ParseInt(match[4][:3], 10, 64)

	return Timestamp(hours*3600_000 + minutes*60_000 + seconds*1000 + millis), nil
}

// Milliseconds returns the raw millisecond value.
func (t Timestamp) Milliseconds() int64 {
	return int64(t)
}

// Seconds returns the timestamp in fractional seconds.
func (t Timestamp) Seconds() float64 {
	return float64(t) / 1000
}

// Minutes returns the timestamp in fractional minutes.
func (t Timestamp) Minutes() float64 {
	return t.Seconds() / 60
}

// Hours returns the timestamp in fractional hours.
func (t Timestamp) Hours() float64 {
	return t.Minutes() / 60
}

// Magnitude returns the absolute distance to other in milliseconds.
func (t Timestamp) Magnitude(other Timestamp) int64 {
	if other > t {
		return int64(other - t)
	}
	return int64(t - other)
}

// Text formats the timestamp as HH:MM:SS.mmm. Hours widen beyond two digits
// when needed; fields are zero padded.
func (t Timestamp) Text() string {
	ms := int64(t)
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600_000,
		ms%3600_000/60_000,
		ms%60_000/1000,
		ms%1000,
	)
}

func (t Timestamp) String() string {
	return t.Text()
}
