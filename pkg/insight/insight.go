// Package insight prepares the backend's advisory suggestions for
// display. The backend already ranks its output, so the merger only caps
// the list and classifies each entry; it never reorders.
package insight

import (
	"strings"

	"github.com/agroplanner/fieldops/pkg/task"
)

// Known suggestion type tags emitted by the decision engine. Anything
// else classifies as Other and still displays.
const (
	TypeDelay      = "DELAY"
	TypeTimeShift  = "TIME_SHIFT"
	TypeTrigger    = "TRIGGER"
	TypePriority   = "PRIORITY"
	TypeReschedule = "RESCHEDULE"
	TypeAlert      = "ALERT"
	TypeInfo       = "INFO"
)

// Kind is the display classification of a suggestion.
type Kind int

const (
	KindOther Kind = iota
	KindDelay
	KindTimeShift
	KindTrigger
	KindPriority
	KindReschedule
	KindAlert
	KindInfo
)

func (k Kind) String() string {
	switch k {
	case KindDelay:
		return TypeDelay
	case KindTimeShift:
		return TypeTimeShift
	case KindTrigger:
		return TypeTrigger
	case KindPriority:
		return TypePriority
	case KindReschedule:
		return TypeReschedule
	case KindAlert:
		return TypeAlert
	case KindInfo:
		return TypeInfo
	default:
		return "OTHER"
	}
}

// Classify maps a raw type tag onto a Kind.
func Classify(s task.Suggestion) Kind {
	switch strings.ToUpper(strings.TrimSpace(s.Type)) {
	case TypeDelay:
		return KindDelay
	case TypeTimeShift:
		return KindTimeShift
	case TypeTrigger:
		return KindTrigger
	case TypePriority:
		return KindPriority
	case TypeReschedule:
		return KindReschedule
	case TypeAlert:
		return KindAlert
	case TypeInfo:
		return KindInfo
	}
	return KindOther
}

// View is a capped suggestion list plus the count of entries the cap hid.
type View struct {
	Visible   []task.Suggestion
	Remainder int
}

// Merge truncates suggestions to limit entries, preserving upstream
// order. A negative limit shows everything.
func Merge(suggestions []task.Suggestion, limit int) View {
	if limit < 0 || limit > len(suggestions) {
		limit = len(suggestions)
	}
	visible := make([]task.Suggestion, limit)
	copy(visible, suggestions[:limit])
	return View{
		Visible:   visible,
		Remainder: len(suggestions) - limit,
	}
}
