package clock

import "fmt"

// Interval is a half-open time range [Start, End) within one day.
type Interval struct {
	Start Minutes `json:"start"`
	End   Minutes `json:"end"`
}

// Overlaps reports whether two half-open intervals share any instant.
// Intervals that touch at a boundary do not overlap. This is the only
// overlap predicate in the codebase; break, booking and time-block checks
// all go through it.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Contains reports whether the instant falls inside the interval.
func (iv Interval) Contains(m Minutes) bool {
	return m >= iv.Start && m < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s-%s", iv.Start, iv.End)
}
