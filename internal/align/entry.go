package align

import (
	"fmt"

	"retime/internal/transcript"
)

// Op classifies how a word relates the revised sequence to the reference.
type Op int

const (
	// OpUnchanged marks a word present in both sequences; it keeps its
	// reference timing.
	OpUnchanged Op = iota
	// OpRemoved marks a reference word absent from the revision. Removed
	// entries are placeholders; their timing is never rendered.
	OpRemoved
	// OpAdded marks a revised word with resolved timing, either inherited
	// from a removed donor or synthesized by Calibrate.
	OpAdded
	// OpUncalibrated marks a revised word whose span is not yet meaningful.
	OpUncalibrated
)

// String returns the lower-case name of the operation.
func (op Op) String() string {
	switch op {
	case OpUnchanged:
		return "unchanged"
	case OpRemoved:
		return "removed"
	case OpAdded:
		return "added"
	case OpUncalibrated:
		return "uncalibrated"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Marker returns the single-character diff marker for rendering.
func (op Op) Marker() string {
	switch op {
	case OpUnchanged:
		return " "
	case OpRemoved:
		return "-"
	case OpAdded:
		return "+"
	default:
		return "?"
	}
}

// Entry is one alignment record. Index points into the reference sequence
// for unchanged/removed entries and into the revised sequence for
// added/uncalibrated entries, and survives calibration untouched.
type Entry struct {
	Index int
	Word  transcript.Word
	Op    Op
}

func (e Entry) String() string {
	span := e.Word.Span()
	return fmt.Sprintf("%s [%d] %s @ %d: %d - %d",
		e.Op.Marker(), e.Index, e.Word.Text(), e.Word.Syllables(),
		span.Start.Milliseconds(), span.End.Milliseconds())
}
