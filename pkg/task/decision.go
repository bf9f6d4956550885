package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decision is the evaluated outcome state of a scheduled task.
type Decision int

const (
	Proceed Decision = iota
	Pending
	Stop
)

// Decisions returns all decision states in display order.
func Decisions() []Decision {
	return []Decision{Proceed, Pending, Stop}
}

// ParseDecision converts a wire string into a Decision. Unknown values fall
// back to Pending with an error so a single bad record never takes down a
// whole task list.
func ParseDecision(raw string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "proceed":
		return Proceed, nil
	case "pending", "":
		return Pending, nil
	case "stop":
		return Stop, nil
	}
	return Pending, fmt.Errorf("task: unknown decision %q", raw)
}

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "Proceed"
	case Stop:
		return "Stop"
	default:
		return "Pending"
	}
}

// Glyph returns the single-cell marker used in schedule views.
func (d Decision) Glyph() string {
	switch d {
	case Proceed:
		return "●"
	case Stop:
		return "✘"
	default:
		return "○"
	}
}

func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Decision) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, _ := ParseDecision(raw)
	*d = parsed
	return nil
}
