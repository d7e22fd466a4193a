package timecode

// Range is a half-open [Start, End) interval. Consumers expect Start <= End;
// construction does not enforce it, so degenerate ranges flow through the
// arithmetic below without panicking.
type Range struct {
	Start Timestamp
	End   Timestamp
}

// Duration returns End minus Start in milliseconds. Malformed ranges yield
// negative durations.
func (r Range) Duration() int64 {
	return int64(r.End - r.Start)
}

// Distance returns the gap between the nearer edges of two ranges in
// milliseconds, or 0 when they touch or overlap.
func (r Range) Distance(other Range) int64 {
	if r.Start < other.Start {
		return max(0, int64(other.Start-r.End))
	}
	return max(0, int64(r.Start-other.End))
}

// IntersectionDuration returns the length of the overlap between two ranges
// in milliseconds, never negative.
func (r Range) IntersectionDuration(other Range) int64 {
	latestStart := max(r.Start, other.Start)
	earliestEnd := min(r.End, other.End)
	return max(0, int64(earliestEnd-latestStart))
}

// IntersectionPercent returns the overlap as a fraction of the union of the
// two ranges: overlap / (durA + durB - overlap). Returns 0 when the union is
// empty, never NaN.
func (r Range) IntersectionPercent(other Range) float64 {
	overlap := r.IntersectionDuration(other)
	total := r.Duration() + other.Duration() - overlap
	if total <= 0 {
		return 0
	}
	return float64(overlap) / float64(total)
}

func (r Range) String() string {
	return r.Start.Text() + " - " + r.End.Text()
}
