package output

import "github.com/crimson-sun/anchorlog/internal/model"

// Verbosity controls how much of each event is retained on the wire.
type Verbosity int

const (
	Minimal  Verbosity = iota // event name and program only
	Standard                  // adds the decoded body
	Full                      // adds the raw payload bytes
)

// ParseVerbosity converts a string ("minimal", "standard", "full") to a
// Verbosity. Unknown strings default to Standard.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}

// FormatEvent returns a copy of the event with fields stripped according
// to verbosity. Stripped fields disappear from JSON via omitempty.
func FormatEvent(e model.Event, v Verbosity) model.Event {
	switch v {
	case Minimal:
		e.Data = nil
		e.Payload = nil
	case Standard:
		e.Payload = nil
	}
	return e
}
