package ring

import (
	"fmt"
	"strings"
)

// Direction selects which way to advance or permute a Ring.
type Direction int

const (
	// Forward increases the index, wrapping past the end.
	Forward Direction = iota
	// Backward decreases the index, wrapping past the start.
	Backward
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name. It accepts "forward"/"next" and
// "backward"/"prev"/"previous", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "next":
		return Forward, nil
	case "backward", "prev", "previous":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("unknown direction %q", s)
	}
}
