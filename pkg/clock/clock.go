package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Minutes is a wall-clock time of day expressed as minutes since midnight.
// All scheduling arithmetic is local to the branch; there is no timezone
// conversion anywhere in the engine.
type Minutes int

// Parse converts a 24-hour "HH:MM" label into Minutes.
func Parse(s string) (Minutes, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hour: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minute: %w", s, err)
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	if m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return Minutes(h*60 + m), nil
}

// MustParse is Parse for compile-time-known labels; it panics on bad input.
func MustParse(s string) Minutes {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseList parses an ordered list of "HH:MM" labels. The list must be
// non-empty and strictly ascending; it is rejected otherwise so a
// misconfigured slot catalog fails at startup instead of at query time.
func ParseList(labels []string) ([]Minutes, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("empty time list")
	}
	out := make([]Minutes, 0, len(labels))
	for i, l := range labels {
		m, err := Parse(l)
		if err != nil {
			return nil, err
		}
		if i > 0 && m <= out[i-1] {
			return nil, fmt.Errorf("time list not strictly ascending at %q", l)
		}
		out = append(out, m)
	}
	return out, nil
}

// String renders the time as a 24-hour "HH:MM" label.
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// MarshalJSON encodes the time as its "HH:MM" label.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON accepts a quoted "HH:MM" label.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("time must be a JSON string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Valid reports whether the value lies within a single day.
func (m Minutes) Valid() bool {
	return m >= 0 && m < 24*60
}
